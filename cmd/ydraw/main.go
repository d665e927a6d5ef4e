// Command ydraw packs YAML drawing documents into the binary primitive
// stream and drives ydraw layers in a supporting terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"honnef.co/go/ydraw"
	"honnef.co/go/ydraw/encoding"
	"honnef.co/go/ydraw/osc"
	"honnef.co/go/ydraw/schema"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: %s <command> [options]

Commands:
  pack     pack a document into a raw stream
  create   pack a document and emit a layer creation sequence
  decode   dump the contents of a packed stream
  ls       list active layers
  plugins  list available plugins
  kill     kill layer(s)
  stop     stop layer(s)
  start    start layer(s)
`, os.Args[0])
}

func dief(f string, v ...any) {
	pterm.Error.Printf(f+"\n", v...)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "pack":
		cmdPack(os.Args[2:])
	case "create":
		cmdCreate(os.Args[2:])
	case "decode":
		cmdDecode(os.Args[2:])
	case "ls":
		cmdList(os.Args[2:])
	case "plugins":
		emit(osc.Plugins())
	case "kill", "stop", "start":
		cmdTarget(os.Args[1], os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

// payloadFlags are shared by pack and create: a document file or a
// built-in demo.
func payloadFlags(fs *flag.FlagSet) (file, demo *string) {
	file = fs.String("f", "", "Path to a YAML drawing `document`")
	demo = fs.String("demo", "", "Use a built-in demo document (2d, 3d or mixed)")
	return file, demo
}

func loadDocument(file, demo string) []byte {
	switch {
	case file != "":
		src, err := os.ReadFile(file)
		if err != nil {
			dief("Couldn't read document: %s", err)
		}
		return src
	case demo != "":
		src, ok := demos[demo]
		if !ok {
			dief("Unknown demo %q", demo)
		}
		return []byte(src)
	default:
		return []byte(demos["2d"])
	}
}

func cmdPack(args []string) {
	fs := flag.NewFlagSet("pack", flag.ExitOnError)
	file, demo := payloadFlags(fs)
	out := fs.String("o", "", "Write the stream to `path` instead of stdout")
	fs.Parse(args)

	data, err := ydraw.PackDocument(loadDocument(*file, *demo))
	if err != nil {
		dief("Couldn't pack document: %s", err)
	}
	if *out != "" {
		if err := os.WriteFile(*out, data, 0666); err != nil {
			dief("Couldn't write stream: %s", err)
		}
		return
	}
	os.Stdout.Write(data)
}

func cmdCreate(args []string) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	file, demo := payloadFlags(fs)
	var opts osc.CreateOptions
	fs.IntVar(&opts.X, "x", 0, "Position in `cells`")
	fs.IntVar(&opts.Y, "y", 0, "Position in `cells`")
	fs.IntVar(&opts.W, "w", 0, "Width in `cells`, 0 stretches to the edge")
	fs.IntVar(&opts.H, "h", 0, "Height in `cells`, 0 stretches to the edge")
	abs := fs.Bool("abs", false, "Position absolutely instead of relative to the cursor")
	dry := fs.Bool("dry", false, "Describe the scene instead of emitting the sequence")
	fs.StringVar(&opts.PluginArgs, "args", "", "Plugin-specific `arguments`")
	fs.Parse(args)
	opts.Plugin = "ydraw"
	opts.Relative = !*abs

	data, err := ydraw.PackDocument(loadDocument(*file, *demo))
	if err != nil {
		dief("Couldn't pack document: %s", err)
	}
	if *dry {
		describe(data)
		return
	}
	emit(osc.Create(opts, data))
}

func cmdDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	in := fs.String("f", "", "Path to a packed stream or a captured sequence")
	fs.Parse(args)
	if *in == "" {
		fs.Usage()
		os.Exit(2)
	}
	data, err := os.ReadFile(*in)
	if err != nil {
		dief("Couldn't read input: %s", err)
	}
	if payload, ok := sequencePayload(data); ok {
		data, err = osc.DecodeBase94(payload)
		if err != nil {
			dief("Couldn't decode payload: %s", err)
		}
	}
	describe(data)
}

// sequencePayload extracts the encoded payload field from a captured
// escape sequence.
func sequencePayload(data []byte) (string, bool) {
	s := string(data)
	if len(s) < 2 || s[0] != '\x1b' || s[1] != ']' {
		return "", false
	}
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\\' || s[len(s)-1] == '\x1b') {
		s = s[:len(s)-1]
	}
	fields := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ';' {
			fields++
			if fields == 3 {
				return s[i+1:], true
			}
		}
	}
	return "", false
}

func describe(data []byte) {
	enc, err := ydraw.Unpack(data)
	if err != nil {
		dief("Couldn't decode stream: %s", err)
	}
	pterm.Info.Printf("%d primitives, background %s, flags %#x\n",
		len(enc.Records), enc.Background, enc.Flags)
	for _, rec := range enc.Records {
		name := fmt.Sprintf("kind %d", rec.Type)
		if kind, ok := schema.ByID(rec.Type); ok {
			name = kind.Name
		}
		pterm.Printf("%3d  %-18s fill=%s stroke=%s/%g bounds=(%g, %g)..(%g, %g)\n",
			rec.Layer, name, rec.FillColor, rec.StrokeColor, rec.StrokeWidth,
			rec.Bounds[0], rec.Bounds[1], rec.Bounds[2], rec.Bounds[3])
	}
	if enc.Flags&encoding.FlagShowBounds != 0 {
		pterm.Println("bounding boxes visible")
	}
}

func cmdList(args []string) {
	fs := flag.NewFlagSet("ls", flag.ExitOnError)
	all := fs.Bool("all", false, "Include stopped layers")
	fs.Parse(args)
	emit(osc.List(*all))
}

func cmdTarget(verb string, args []string) {
	fs := flag.NewFlagSet(verb, flag.ExitOnError)
	var t osc.Target
	fs.StringVar(&t.ID, "id", "", "Layer `ID`")
	fs.StringVar(&t.Plugin, "plugin", "", "All layers of `plugin`")
	fs.Parse(args)

	var (
		seq string
		err error
	)
	switch verb {
	case "kill":
		seq, err = osc.Kill(t)
	case "stop":
		seq, err = osc.Stop(t)
	case "start":
		seq, err = osc.Start(t)
	}
	if err != nil {
		dief("%s", err)
	}
	emit(seq)
}

func emit(seq string) {
	os.Stdout.WriteString(osc.MaybeWrapTmux(seq))
}
