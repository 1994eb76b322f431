// Command crcctl is a host front-end over the crc engine: compute, list,
// combine and verify CRC digests from the command line. The engine itself
// (package crc) has no knowledge of any of this — crcctl is just a thin
// cobra CLI wrapped around it.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/crcsuite/crc"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crcctl",
		Short: "Compute and compare CRC checksums against the named catalogue",
	}

	rootCmd.AddCommand(newSumCmd(), newListCmd(), newCombineCmd(), newVerifyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// crcFlags are the explicit-parameter flags shared by sum/combine/verify,
// mirroring New's named options.
type crcFlags struct {
	name   string
	width  uint8
	poly   uint64
	init   uint64
	refIn  bool
	refOut bool
	xorOut uint64
	method string
}

func (f *crcFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "catalogue template name (e.g. crc-32, xmodem)")
	fs.Uint8Var(&f.width, "width", 0, "CRC width in bits, 1..64 (with --poly, overrides --name)")
	fs.Uint64Var(&f.poly, "poly", 0, "generator polynomial, normal form")
	fs.Uint64Var(&f.init, "init", 0, "initial register value")
	fs.BoolVar(&f.refIn, "refin", false, "reflect input bytes")
	fs.BoolVar(&f.refOut, "refout", false, "reflect final register")
	fs.Uint64Var(&f.xorOut, "xorout", 0, "final XOR mask")
	fs.StringVar(&f.method, "method", "wordwise", "update kernel: bitwise, bytewise, wordwise")
}

func newEngine(f crcFlags, explicit bool) (*crc.Engine, error) {
	var method crc.Method
	switch strings.ToLower(f.method) {
	case "", "wordwise":
		method = crc.MethodWordwise
	case "bytewise":
		method = crc.MethodBytewise
	case "bitwise":
		method = crc.MethodBitwise
	default:
		return nil, fmt.Errorf("unknown method %q: want bitwise, bytewise or wordwise", f.method)
	}

	opts := []crc.Option{crc.WithMethod(method)}
	if f.name != "" {
		opts = append(opts, crc.WithName(f.name))
	}
	if explicit {
		if f.width != 0 {
			opts = append(opts, crc.WithWidth(f.width))
		}
		if f.poly != 0 {
			opts = append(opts, crc.WithPoly(f.poly))
		}
		opts = append(opts, crc.WithInit(f.init), crc.WithRefIn(f.refIn),
			crc.WithRefOut(f.refOut), crc.WithXorOut(f.xorOut))
	}
	return crc.New(opts...)
}

func newSumCmd() *cobra.Command {
	var f crcFlags
	var file string
	var asHex bool

	cmd := &cobra.Command{
		Use:   "sum [file]",
		Short: "Compute a CRC digest over stdin or a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				file = args[0]
			}
			data, err := readInput(file)
			if err != nil {
				return err
			}
			e, err := newEngine(f, f.width != 0 || f.poly != 0)
			if err != nil {
				return err
			}
			e.Update(data)
			if asHex {
				fmt.Println(e.HexDigest())
			} else {
				fmt.Printf("0x%X\n", e.Digest())
			}
			return nil
		},
	}
	f.register(cmd.Flags())
	cmd.Flags().BoolVar(&asHex, "hex", false, "print as lowercase hex instead of 0x-prefixed integer")
	return cmd
}

func newListCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every catalogue template (templates_available)",
		RunE: func(cmd *cobra.Command, args []string) error {
			templates := crc.TemplatesAvailable()
			names := make([]string, 0, len(templates))
			for n := range templates {
				names = append(names, n)
			}
			sort.Strings(names)

			if asJSON {
				type entry struct {
					Width  uint8  `json:"width"`
					Poly   string `json:"poly"`
					Init   string `json:"init"`
					RefIn  bool   `json:"refin"`
					RefOut bool   `json:"refout"`
					XorOut string `json:"xorout"`
				}
				out := make(map[string]entry, len(names))
				for _, n := range names {
					c := templates[n]
					out[n] = entry{
						Width:  c.Width,
						Poly:   fmt.Sprintf("0x%X", c.Poly),
						Init:   fmt.Sprintf("0x%X", c.Init),
						RefIn:  c.RefIn,
						RefOut: c.RefOut,
						XorOut: fmt.Sprintf("0x%X", c.XorOut),
					}
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			for _, n := range names {
				c := templates[n]
				fmt.Printf("%-28s width=%-2d poly=0x%-16X init=0x%-16X refin=%-5v refout=%-5v xorout=0x%X\n",
					n, c.Width, c.Poly, c.Init, c.RefIn, c.RefOut, c.XorOut)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit as JSON instead of a table")
	return cmd
}

func newCombineCmd() *cobra.Command {
	var f crcFlags
	var crc1Str, crc2Str string
	var len2 int

	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Merge two CRCs as if their byte streams had been concatenated",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEngine(f, f.width != 0 || f.poly != 0)
			if err != nil {
				return err
			}
			c1, err := strconv.ParseUint(strings.TrimPrefix(crc1Str, "0x"), 16, 64)
			if err != nil {
				return fmt.Errorf("invalid --crc1: %w", err)
			}
			c2, err := strconv.ParseUint(strings.TrimPrefix(crc2Str, "0x"), 16, 64)
			if err != nil {
				return fmt.Errorf("invalid --crc2: %w", err)
			}
			combined, err := e.Combine(c1, c2, len2)
			if err != nil {
				return err
			}
			fmt.Printf("0x%X\n", combined)
			return nil
		},
	}
	f.register(cmd.Flags())
	cmd.Flags().StringVar(&crc1Str, "crc1", "", "CRC of the first part, hex")
	cmd.Flags().StringVar(&crc2Str, "crc2", "", "CRC of the second part, hex")
	cmd.Flags().IntVar(&len2, "len2", 0, "byte length of the second part")
	cmd.MarkFlagRequired("crc1")
	cmd.MarkFlagRequired("crc2")
	cmd.MarkFlagRequired("len2")
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var f crcFlags
	var file string
	var expectHex string

	cmd := &cobra.Command{
		Use:   "verify [file]",
		Short: "Recompute a digest and compare it against an expected hex value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				file = args[0]
			}
			data, err := readInput(file)
			if err != nil {
				return err
			}
			e, err := newEngine(f, f.width != 0 || f.poly != 0)
			if err != nil {
				return err
			}
			e.Update(data)
			got := e.HexDigest()
			want := strings.ToLower(strings.TrimPrefix(expectHex, "0x"))
			if got == want {
				fmt.Printf("PASS: %s\n", got)
				return nil
			}
			fmt.Printf("FAIL: got %s, want %s\n", got, want)
			return fmt.Errorf("digest mismatch")
		},
	}
	f.register(cmd.Flags())
	cmd.Flags().StringVar(&expectHex, "expect", "", "expected digest, hex")
	cmd.MarkFlagRequired("expect")
	return cmd
}

func readInput(path string) ([]byte, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	br := bufio.NewReader(r)
	return io.ReadAll(br)
}
