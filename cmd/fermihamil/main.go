// Command fermihamil generates, converts and inspects fermionic Hamiltonians.
//
// It can generate random interaction sums, map fermionic sums onto qubit
// Pauli-string sums with the Jordan-Wigner transform, and read or write both
// the JSON envelope and the binary hamfile container.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/alecthomas/kong"
	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	jsoniter "github.com/json-iterator/go"

	"github.com/arloliu/fermihamil/format"
	"github.com/arloliu/fermihamil/gen"
	"github.com/arloliu/fermihamil/hamfile"
	"github.com/arloliu/fermihamil/mapping"
	"github.com/arloliu/fermihamil/terms"
)

const version = "0.1.0"

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// CLI defines the command-line interface for fermihamil.
var CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Generate GenerateCmd `cmd:"" help:"Generate a random Hamiltonian"`
	Convert  ConvertCmd  `cmd:"" help:"Convert a fermionic sum to a qubit sum"`
	Info     InfoCmd     `cmd:"" help:"Inspect a hamfile container header"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

type cmdContext struct {
	logger kitlog.Logger
}

// GenerateCmd generates a random Hamiltonian in the requested encoding.
type GenerateCmd struct {
	Encoding        string `arg:"" enum:"fermions,qubits" help:"Encoding to generate (fermions|qubits)"`
	NumTerms        int    `name:"num-terms" short:"n" default:"64" help:"Number of terms to generate"`
	MaxOrbitalIndex uint32 `name:"max-orbital-index" default:"63" help:"Largest orbital index drawn for fermionic terms"`
	Seed            uint64 `help:"Seed for the random generator; 0 uses a random seed"`
	Output          string `short:"o" type:"path" help:"Output file; defaults to stdout"`
	Format          string `enum:"json,ham" default:"json" help:"Output format (json|ham)"`
	Compression     string `enum:"none,zstd,s2,lz4" default:"none" help:"Hamfile payload compression"`
	Pretty          bool   `help:"Pretty-print JSON output"`
}

func (c *GenerateCmd) Run(ctx *cmdContext) error {
	if c.NumTerms < 0 {
		return fmt.Errorf("num-terms must be non-negative, got %d", c.NumTerms)
	}
	if c.Encoding == "fermions" && c.MaxOrbitalIndex < 3 {
		return fmt.Errorf("max-orbital-index must be at least 3, got %d", c.MaxOrbitalIndex)
	}

	rng := newRand(c.Seed)

	var repr any
	switch c.Encoding {
	case "fermions":
		repr = gen.RandomFermionSum(rng, c.NumTerms, c.MaxOrbitalIndex)
	case "qubits":
		repr = gen.RandomPauliSum(rng, c.NumTerms)
	}

	level.Debug(ctx.logger).Log("msg", "generated sum", "encoding", c.Encoding, "terms", c.NumTerms)

	data, err := encodeOutput(repr, c.Format, c.Compression, c.Pretty)
	if err != nil {
		return err
	}

	return writeOutput(ctx, c.Output, data, c.Format == "json")
}

// ConvertCmd maps a fermionic sum onto a qubit sum with the Jordan-Wigner
// transform.
type ConvertCmd struct {
	Input       string `arg:"" type:"existingfile" help:"Input file holding a fermionic sum"`
	Mapping     string `enum:"jordan-wigner" default:"jordan-wigner" help:"Fermion-to-qubit mapping"`
	Output      string `short:"o" type:"path" help:"Output file; defaults to stdout"`
	Format      string `enum:"json,ham" default:"json" help:"Output format (json|ham)"`
	Compression string `enum:"none,zstd,s2,lz4" default:"none" help:"Hamfile payload compression"`
	Pretty      bool   `help:"Pretty-print JSON output"`
}

func (c *ConvertCmd) Run(ctx *cmdContext) error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.Input, err)
	}

	fermiSum, err := decodeFermionInput(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", c.Input, err)
	}

	level.Debug(ctx.logger).Log("msg", "loaded fermionic sum", "terms", fermiSum.Len())

	pauliSum := terms.NewPauliSum[float64]()
	if err := mapping.NewJordanWigner(fermiSum).AddTo(pauliSum); err != nil {
		return fmt.Errorf("jordan-wigner transform: %w", err)
	}

	level.Info(ctx.logger).Log("msg", "converted sum",
		"input_terms", fermiSum.Len(), "output_terms", pauliSum.Len())

	out, err := encodeOutput(pauliSum, c.Format, c.Compression, c.Pretty)
	if err != nil {
		return err
	}

	return writeOutput(ctx, c.Output, out, c.Format == "json")
}

// InfoCmd prints the header fields of a hamfile container.
type InfoCmd struct {
	Input string `arg:"" type:"existingfile" help:"Hamfile to inspect"`
}

func (c *InfoCmd) Run(ctx *cmdContext) error {
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return fmt.Errorf("read %s: %w", c.Input, err)
	}

	enc, err := hamfile.ReadEncoding(data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", c.Input, err)
	}

	fmt.Printf("encoding: %s\n", enc)
	fmt.Printf("size: %d bytes\n", len(data))

	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *cmdContext) error {
	fmt.Printf("fermihamil %s\n", version)
	return nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return rand.New(rand.NewPCG(seed, seed))
}

// decodeFermionInput accepts either a hamfile container or a bare JSON
// envelope, distinguishing them by the hamfile magic number.
func decodeFermionInput(data []byte) (*terms.FermionSum[float64], error) {
	if _, err := hamfile.ReadEncoding(data); err == nil {
		return hamfile.ReadFermionSum[float64](data)
	}

	repr := terms.NewFermionSum[float64]()
	if err := jsonCodec.Unmarshal(data, repr); err != nil {
		return nil, err
	}

	return repr, nil
}

func encodeOutput(repr any, outFormat, compression string, pretty bool) ([]byte, error) {
	switch outFormat {
	case "json":
		if pretty {
			return jsonCodec.MarshalIndent(repr, "", "  ")
		}

		return jsonCodec.Marshal(repr)
	case "ham":
		comp, err := format.ParseCompression(compression)
		if err != nil {
			return nil, err
		}

		switch sum := repr.(type) {
		case *terms.FermionSum[float64]:
			return hamfile.WriteFermionSum(sum, hamfile.WithCompression(comp))
		case *terms.PauliSum[float64]:
			return hamfile.WritePauliSum(sum, hamfile.WithCompression(comp))
		default:
			return nil, fmt.Errorf("unsupported sum type %T", repr)
		}
	default:
		return nil, fmt.Errorf("unsupported output format %q", outFormat)
	}
}

func writeOutput(ctx *cmdContext, path string, data []byte, newline bool) error {
	if path == "" || path == "-" {
		if newline {
			data = append(data, '\n')
		}
		_, err := os.Stdout.Write(data)

		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	level.Info(ctx.logger).Log("msg", "wrote output", "path", path, "bytes", len(data))

	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("fermihamil"),
		kong.Description("Fermionic Hamiltonian generator and fermion-to-qubit converter"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	if CLI.Verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	err := ctx.Run(&cmdContext{logger: logger})
	ctx.FatalIfErrorf(err)
}
