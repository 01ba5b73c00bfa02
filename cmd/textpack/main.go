package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/arloliu/textpack"
	"github.com/arloliu/textpack/format"
)

var logger *zap.SugaredLogger

func main() {
	zl := zap.Must(zap.NewProduction())
	defer zl.Sync() //nolint:errcheck
	logger = zl.Sugar()

	backendFlag := &cli.StringFlag{
		Name:    "backend",
		Aliases: []string{"b"},
		Usage:   "compression backend: zlib, lz4, zstd or s2",
		Value:   "zlib",
	}

	app := cli.App{
		Name:  "textpack",
		Usage: "Compress text into length-prefixed containers and back",
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress argument text, or stdin when no argument is given",
				Action:    compressAction,
				ArgsUsage: "[TEXT]",
				Flags: []cli.Flag{
					backendFlag,
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output file for the compressed container",
						Value:   "compressed_output.bin",
					},
				},
			},
			{
				Name:      "decompress",
				Usage:     "Decompress a container file back into text",
				Action:    decompressAction,
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					backendFlag,
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output file for the recovered text",
						Value:   "decompressed_output.txt",
					},
				},
			},
			{
				Name:      "encode-varint",
				Usage:     "Encode an unsigned integer as a varint and print it as hex",
				Action:    encodeVarintAction,
				ArgsUsage: "NUMBER",
			},
			{
				Name:      "decode-varint",
				Usage:     "Decode a varint from hex bytes",
				Action:    decodeVarintAction,
				ArgsUsage: "HEX",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "textpack: %s\n", err)
		os.Exit(1)
	}
}

func parseBackend(ctx *cli.Context) (format.BackendType, error) {
	name := ctx.String("backend")
	backend, ok := format.ParseBackend(name)
	if !ok {
		return 0, fmt.Errorf("unknown backend %q", name)
	}

	return backend, nil
}

func compressAction(ctx *cli.Context) error {
	backend, err := parseBackend(ctx)
	if err != nil {
		return err
	}

	var text string
	if ctx.Args().Present() {
		text = ctx.Args().First()
	} else {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(raw)
	}

	data, err := textpack.Compress(text, backend)
	if err != nil {
		return fmt.Errorf("compression failed: %w", err)
	}

	outputFile := ctx.String("output")
	if err := os.WriteFile(outputFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}

	preview := data
	if len(preview) > 16 {
		preview = preview[:16]
	}

	ratio := 0.0
	if len(text) > 0 {
		ratio = float64(len(data)) / float64(len(text)) * 100.0
	}

	logger.Infow("compressed",
		"backend", backend.String(),
		"original_bytes", len(text),
		"container_bytes", len(data),
		"ratio_pct", fmt.Sprintf("%.2f", ratio),
		"preview", hex.EncodeToString(preview),
		"output", outputFile,
	)

	return nil
}

func decompressAction(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return fmt.Errorf("decompress requires a container file argument")
	}

	backend, err := parseBackend(ctx)
	if err != nil {
		return err
	}

	inputFile := ctx.Args().First()
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputFile, err)
	}

	text, err := textpack.Decompress(data, backend)
	if err != nil {
		return fmt.Errorf("decompression failed: %w", err)
	}

	outputFile := ctx.String("output")
	if err := os.WriteFile(outputFile, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}

	logger.Infow("decompressed",
		"backend", backend.String(),
		"container_bytes", len(data),
		"text_bytes", len(text),
		"xxhash64", fmt.Sprintf("%016x", xxhash.Sum64String(text)),
		"output", outputFile,
	)

	return nil
}

func encodeVarintAction(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return fmt.Errorf("encode-varint requires a number argument")
	}

	value, err := strconv.ParseUint(ctx.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", ctx.Args().First(), err)
	}

	encoded := textpack.EncodeVarint(value)
	fmt.Printf("%s\n", hex.EncodeToString(encoded))

	return nil
}

func decodeVarintAction(ctx *cli.Context) error {
	if !ctx.Args().Present() {
		return fmt.Errorf("decode-varint requires a hex argument")
	}

	buf, err := hex.DecodeString(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("invalid hex %q: %w", ctx.Args().First(), err)
	}

	value, consumed, err := textpack.DecodeVarint(buf)
	if err != nil {
		return fmt.Errorf("varint decode failed: %w", err)
	}

	fmt.Printf("value=%d consumed=%d\n", value, consumed)

	return nil
}
