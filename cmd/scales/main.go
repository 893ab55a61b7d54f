// Command scales prints, exports, and plays musical scales.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/pflag"

	"github.com/leandrodaf/scales/sdk/contracts"
	"github.com/leandrodaf/scales/sdk/midi"
	"github.com/leandrodaf/scales/sdk/smf"
	"github.com/leandrodaf/scales/sdk/theory"
)

func mainE() error {
	fRoot := pflag.String("root", "C", "starting note, e.g. C, F#4, Bb2")
	fMode := pflag.String("mode", "ionian", "mode or scale name")
	fOctaves := pflag.Int("octaves", 1, "number of octaves to generate")
	fList := pflag.Bool("list-modes", false, "list supported mode names and exit")
	fModes := pflag.String("modes", "", "YAML file with additional mode definitions")
	fExport := pflag.String("export", "", "write the scale to a standard MIDI file")
	fPlay := pflag.Bool("play", false, "play the scale on a MIDI output device")
	fDevice := pflag.Int("device", 0, "MIDI output device index for --play")
	fTempo := pflag.Int("tempo", 120, "playback tempo in beats per minute")
	pflag.Parse()
	if args := pflag.Args(); len(args) != 0 {
		return fmt.Errorf("unexpected argument: %q", args[0])
	}

	table := theory.ModeTable(nil)
	if *fModes != "" {
		f, err := os.Open(*fModes)
		if err != nil {
			return fmt.Errorf("could not open mode definitions: %v", err)
		}
		table, err = theory.LoadModes(f)
		f.Close()
		if err != nil {
			return err
		}
	}

	if *fList {
		names := theory.Modes()
		if table != nil {
			names = table.Names()
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	opts := []theory.ScaleOption{
		theory.WithMode(*fMode),
		theory.WithOctaves(*fOctaves),
	}
	if table != nil {
		opts = append(opts, theory.WithModeTable(table))
	}
	notes, err := theory.ScaleFrom(*fRoot, opts...)
	if err != nil {
		return err
	}

	names := make([]string, len(notes))
	for i, n := range notes {
		names[i] = n.MIDI()
	}
	fmt.Println(strings.Join(names, " "))

	if *fExport != "" {
		if err := smf.Export(*fExport, notes); err != nil {
			return fmt.Errorf("exporting %s: %w", *fExport, err)
		}
		fmt.Println("wrote", *fExport)
	}

	if *fPlay {
		client, err := midi.NewMIDIClient(
			contracts.WithLogLevel(contracts.WarnLevel),
		)
		if err != nil {
			return err
		}
		defer client.Stop()
		if err := client.SelectDevice(*fDevice); err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := midi.Play(ctx, client, notes, midi.WithTempo(*fTempo)); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	if err := mainE(); err != nil {
		fmt.Fprintln(os.Stderr, "scales:", err)
		os.Exit(1)
	}
}
