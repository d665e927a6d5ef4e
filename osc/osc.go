// Package osc builds the vendor escape sequences that deliver payloads
// to terminal plugins.
//
// Sequences have the form
//
//	ESC ] 999999;<generic-args>;<plugin-args>;<payload> ESC \
//
// where generic-args is a small Unix-like command line and the payload
// is base94 encoded. Inside tmux, sequences must additionally be
// wrapped in DCS passthrough with doubled ESC characters.
package osc

import (
	"fmt"
	"os"
	"strings"
)

// VendorID identifies our sequences among OSC consumers.
const VendorID = 999999

const st = "\x1b\\"

// CreateOptions place a new plugin layer. Zero width or height stretch
// the layer to the screen edge.
type CreateOptions struct {
	Plugin string
	X, Y   int
	W, H   int
	// Relative positions the layer relative to the cursor instead of
	// the screen origin.
	Relative bool
	// PluginArgs is passed to the plugin uninterpreted.
	PluginArgs string
}

// Create builds a sequence that creates a plugin layer with the given
// payload.
func Create(opts CreateOptions, payload []byte) string {
	args := fmt.Sprintf("create -p %s -x %d -y %d -w %d -h %d", opts.Plugin, opts.X, opts.Y, opts.W, opts.H)
	if opts.Relative {
		args += " -r"
	}
	return sequence(args, opts.PluginArgs, payload)
}

// Update builds a sequence that replaces the payload of an existing
// layer.
func Update(id string, pluginArgs string, payload []byte) string {
	return sequence("update --id "+id, pluginArgs, payload)
}

// List builds a sequence that asks the terminal to list active layers.
func List(all bool) string {
	if all {
		return sequence("ls --all", "", nil)
	}
	return sequence("ls", "", nil)
}

// Plugins builds a sequence that asks the terminal to list available
// plugins.
func Plugins() string {
	return sequence("plugins", "", nil)
}

// A Target selects layers for Kill, Stop and Start, either one layer by
// ID or every layer of a plugin.
type Target struct {
	ID     string
	Plugin string
}

func (t Target) args(verb string) (string, error) {
	switch {
	case t.ID != "":
		return verb + " --id " + t.ID, nil
	case t.Plugin != "":
		return verb + " --plugin " + t.Plugin, nil
	default:
		return "", fmt.Errorf("osc: %s: target needs an ID or a plugin", verb)
	}
}

func Kill(t Target) (string, error)  { return verbSequence("kill", t) }
func Stop(t Target) (string, error)  { return verbSequence("stop", t) }
func Start(t Target) (string, error) { return verbSequence("start", t) }

func verbSequence(verb string, t Target) (string, error) {
	args, err := t.args(verb)
	if err != nil {
		return "", err
	}
	return sequence(args, "", nil), nil
}

func sequence(args, pluginArgs string, payload []byte) string {
	encoded := ""
	if len(payload) > 0 {
		encoded = EncodeBase94(payload)
	}
	return fmt.Sprintf("\x1b]%d;%s;%s;%s%s", VendorID, args, pluginArgs, encoded, st)
}

// WrapTmux wraps a sequence in tmux DCS passthrough, doubling embedded
// ESC characters.
func WrapTmux(seq string) string {
	return "\x1bPtmux;" + strings.ReplaceAll(seq, "\x1b", "\x1b\x1b") + st
}

// MaybeWrapTmux wraps the sequence only when running inside tmux.
func MaybeWrapTmux(seq string) string {
	if _, ok := os.LookupEnv("TMUX"); ok {
		return WrapTmux(seq)
	}
	return seq
}
