// guidctl generates, parses, and converts component identifiers, resolving
// well-known names from a TOML catalog.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/danmuck/nanocom/guid"
	"github.com/danmuck/nanocom/internal/logging"
)

const defaultConfigPath = "guidctl.toml"

func usage() {
	fmt.Fprintf(os.Stderr, `usage: guidctl [-config path] <command> [args]

commands:
  new [-n count]              generate fresh identifiers
  parse <text|name>           show fields, hash, and both encodings
  encode [-variant 1|2] <text|name>
  decode [-variant 1|2] <32 hex digits>
  lookup <name>               resolve a catalog name
  names                       list catalog names
`)
	os.Exit(2)
}

func main() {
	logging.ConfigureRuntime()

	configPath := flag.String("config", defaultConfigPath, "path to the identifier catalog")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}

	catalog, err := loadCatalog(*configPath, *configPath != defaultConfigPath)
	if err != nil {
		fatal(err)
	}

	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "new":
		err = cmdNew(args)
	case "parse":
		err = cmdParse(catalog, args)
	case "encode":
		err = cmdEncode(catalog, args)
	case "decode":
		err = cmdDecode(args)
	case "lookup":
		err = cmdLookup(catalog, args)
	case "names":
		err = cmdNames(catalog, args)
	default:
		usage()
	}
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "guidctl: %v\n", err)
	os.Exit(1)
}

// resolveValue accepts either a textual identifier or a catalog name.
func resolveValue(catalog *Catalog, arg string) (guid.GUID, error) {
	if g, ok := catalog.Resolve(arg); ok {
		return g, nil
	}
	g, err := guid.Parse(arg)
	if err != nil {
		return guid.Nil, fmt.Errorf("%q is neither a catalog name nor an identifier: %w", arg, err)
	}
	return g, nil
}

func cmdNew(args []string) error {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	count := fs.Int("n", 1, "number of identifiers to generate")
	if err := fs.Parse(args); err != nil {
		return err
	}
	for i := 0; i < *count; i++ {
		fmt.Println(guid.New())
	}
	return nil
}

func cmdParse(catalog *Catalog, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("parse: expected exactly one argument")
	}
	g, err := resolveValue(catalog, args[0])
	if err != nil {
		return err
	}
	v1 := guid.EncodeVariant1(g)
	v2 := guid.EncodeVariant2(g)
	fmt.Printf("canonical  %s\n", g)
	fmt.Printf("fields     data1=0x%08x data2=0x%04x data3=0x%04x data4=%x\n",
		g.Data1, g.Data2, g.Data3, g.Data4)
	fmt.Printf("hash       0x%x\n", g.Hash())
	fmt.Printf("variant-1  %x\n", v1)
	fmt.Printf("variant-2  %x\n", v2)
	return nil
}

func cmdEncode(catalog *Catalog, args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	variant := fs.Int("variant", 1, "binary encoding variant (1 or 2)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("encode: expected exactly one argument")
	}
	g, err := resolveValue(catalog, fs.Arg(0))
	if err != nil {
		return err
	}
	switch *variant {
	case 1:
		buf := guid.EncodeVariant1(g)
		fmt.Printf("%x\n", buf)
	case 2:
		buf := guid.EncodeVariant2(g)
		fmt.Printf("%x\n", buf)
	default:
		return fmt.Errorf("encode: unknown variant %d", *variant)
	}
	return nil
}

func cmdDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	variant := fs.Int("variant", 1, "binary encoding variant (1 or 2)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("decode: expected exactly one argument")
	}
	raw, err := hex.DecodeString(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	var g guid.GUID
	switch *variant {
	case 1:
		g, err = guid.DecodeVariant1(raw)
	case 2:
		g, err = guid.DecodeVariant2(raw)
	default:
		return fmt.Errorf("decode: unknown variant %d", *variant)
	}
	if err != nil {
		return err
	}
	fmt.Println(g)
	return nil
}

func cmdLookup(catalog *Catalog, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("lookup: expected exactly one name")
	}
	g, ok := catalog.Resolve(args[0])
	if !ok {
		return fmt.Errorf("lookup: %q not in catalog", args[0])
	}
	fmt.Println(g)
	return nil
}

func cmdNames(catalog *Catalog, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("names: takes no arguments")
	}
	for _, name := range catalog.Names() {
		g, _ := catalog.Resolve(name)
		fmt.Printf("%-24s %s\n", name, g)
	}
	return nil
}
