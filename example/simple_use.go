package main

import (
	"context"
	"fmt"

	"github.com/leandrodaf/scales/internal/logger"
	"github.com/leandrodaf/scales/sdk/contracts"
	"github.com/leandrodaf/scales/sdk/midi"
	"github.com/leandrodaf/scales/sdk/theory"
)

func main() {
	log := logger.NewZapLogger()

	notes, err := theory.ScaleFrom("F#", theory.WithMode("blues"), theory.WithOctaves(2))
	if err != nil {
		log.Error("Failed to build scale", log.Field().Error("error", err))
		return
	}
	fmt.Println("F# blues over two octaves:")
	for _, n := range notes {
		fmt.Printf("  %-4s (MIDI key %d)\n", n.MIDI(), n.Number())
	}

	client, err := midi.NewMIDIClient(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
	)
	if err != nil {
		log.Error("Failed to initialize MIDI client", log.Field().Error("error", err))
		return
	}
	defer client.Stop()

	devices, err := client.ListDevices()
	if err != nil || len(devices) == 0 {
		log.Warn("No MIDI devices found; skipping playback", log.Field().Error("error", err))
		return
	}
	fmt.Println("Available MIDI devices:", devices)

	if err = client.SelectDevice(0); err != nil {
		log.Error("Failed to select MIDI device", log.Field().Error("error", err))
		return
	}

	if err = midi.Play(context.Background(), client, notes, midi.WithTempo(180)); err != nil {
		log.Error("Playback failed", log.Field().Error("error", err))
	}
}
