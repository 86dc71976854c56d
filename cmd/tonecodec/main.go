// Command tonecodec shows curves (.acv) and arbitrary map (.amp) files as
// text and turns edited text back into files.
//
// Usage:
//
//	tonecodec [-v] decode FILE
//	tonecodec [-v] encode [-o OUT] TEXTFILE
//
// TEXTFILE may be "-" to read standard input. Without -o the output is
// written next to TEXTFILE with the extension of the detected format.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/tonecodec"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tonecodec: ")

	verbose := flag.Bool("v", false, "log decode and parse details to stderr")
	flag.Usage = usage
	flag.Parse()

	if *verbose {
		tonecodec.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	var err error
	switch cmd, args := flag.Arg(0), flag.Args()[1:]; cmd {
	case "decode":
		err = decode(args)
	case "encode":
		err = encode(args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: tonecodec [-v] decode FILE")
	fmt.Fprintln(os.Stderr, "       tonecodec [-v] encode [-o OUT] TEXTFILE")
	flag.PrintDefaults()
}

func decode(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("decode takes exactly one file, got %d", len(args))
	}
	doc, err := tonecodec.ReadFile(args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, doc.Text())
	return err
}

func encode(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	out := fs.String("o", "", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("encode takes exactly one text file, got %d", fs.NArg())
	}

	src := fs.Arg(0)
	text, err := readText(src)
	if err != nil {
		return err
	}

	if *out != "" {
		format, err := tonecodec.WriteFile(*out, text)
		if err != nil {
			return err
		}
		log.Printf("wrote %s file %s", format, *out)
		return nil
	}

	format, data, err := tonecodec.EncodeText(text)
	if err != nil {
		return err
	}
	if src == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	dst := strings.TrimSuffix(src, filepath.Ext(src)) + format.Ext()
	if dst == src {
		return fmt.Errorf("output would overwrite %s, use -o", src)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return err
	}
	log.Printf("wrote %s file %s", format, dst)
	return nil
}

func readText(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(filepath.Clean(path))
	return string(b), err
}
