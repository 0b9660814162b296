// Command huff compresses and decompresses files with a Huffman code.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	huffman "github.com/kxlsx/huffcoding"
)

var log = logging.MustGetLogger("huff")

const progName = "huff"
const usageMessageRaw = `
Usage: huff OPTIONS COMMAND FILE

Options:
  --output FILE, -o FILE
	Write to FILE instead of the default output file.
  --verbose, -v
	Log tree construction to standard error.

Commands:
  compress FILE
	Compress FILE into FILE.huff.
  decompress FILE.huff
	Decompress FILE.huff into FILE.
  codes FILE
	Print the code of every byte value in FILE, and the size of
	the tree topology.
`

var ourFlags *flag.FlagSet
var outFilename string

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var leveledLogBackend logging.LeveledBackend

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func newFlags(verbose *bool) *flag.FlagSet {
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(&nullWriter{})
	fs.StringVar(&outFilename, "output", "", "")
	fs.StringVar(&outFilename, "o", "", "")
	fs.BoolVar(verbose, "verbose", false, "")
	fs.BoolVar(verbose, "v", false, "")
	return fs
}

func main() {
	startLogging()

	var verbose bool
	ourFlags = newFlags(&verbose)

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if verbose {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if ourFlags.NArg() != 2 {
		usageErrorf("expected COMMAND FILE, got %d arguments", ourFlags.NArg())
	}
	command, inFilename := ourFlags.Arg(0), ourFlags.Arg(1)

	var err error
	switch command {
	default:
		usageErrorf("bad command \"%s\"", command)
	case "compress":
		err = compressFile(inFilename)
	case "decompress":
		err = decompressFile(inFilename)
	case "codes":
		err = printCodes(inFilename)
	}
	if err != nil {
		exitError(err)
	}
}

func compressFile(inFilename string) error {
	out := outFilename
	if out == "" {
		out = inFilename + ".huff"
	}

	data, err := os.ReadFile(inFilename)
	if err != nil {
		return err
	}
	packed, err := huffman.Compress(data)
	if err != nil {
		return fmt.Errorf("compressing %s: %w", inFilename, err)
	}
	if err := os.WriteFile(out, packed, 0o666); err != nil {
		return err
	}

	log.Infof("%s: %d -> %d bytes", out, len(data), len(packed))
	return nil
}

func decompressFile(inFilename string) error {
	out := outFilename
	if out == "" {
		if !strings.HasSuffix(inFilename, ".huff") {
			return fmt.Errorf("file to decompress must be named something.huff, or use -o")
		}
		out = strings.TrimSuffix(inFilename, ".huff")
	}

	packed, err := os.ReadFile(inFilename)
	if err != nil {
		return err
	}
	data, err := huffman.Decompress(packed)
	if err != nil {
		return fmt.Errorf("decompressing %s: %w", inFilename, err)
	}
	if err := os.WriteFile(out, data, 0o666); err != nil {
		return err
	}

	log.Infof("%s: %d -> %d bytes", out, len(packed), len(data))
	return nil
}

func printCodes(inFilename string) error {
	data, err := os.ReadFile(inFilename)
	if err != nil {
		return err
	}
	t, err := huffman.NewTree[byte](huffman.CountBytes(data))
	if err != nil {
		return fmt.Errorf("%s: %w", inFilename, err)
	}

	w := io.Writer(os.Stdout)
	if outFilename != "" {
		f, err := os.Create(outFilename)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if _, err := t.Dump(w); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "topology: %d bits\n", huffman.AsBin(t).Len())
	return err
}
