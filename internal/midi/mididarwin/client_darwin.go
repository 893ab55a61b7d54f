//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"
	"sync"

	"github.com/leandrodaf/scales/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// Error definitions for MIDI connection and delivery issues.
var (
	ErrNoMIDIDevices     = errors.New("no MIDI destinations found")
	ErrInvalidMIDIDevice = errors.New("invalid MIDI device")
	ErrNoDeviceSelected  = errors.New("no MIDI device selected")
	ErrCreateOutputPort  = errors.New("error creating output port")
)

// ClientMid manages MIDI output on Darwin (macOS) systems. It owns the
// CoreMIDI client and output port and tracks the selected destination.
type ClientMid struct {
	logger         contracts.Logger
	client         coremidi.Client           // CoreMIDI client instance for MIDI operations.
	outputPort     coremidi.OutputPort       // Output port used to deliver packets.
	coreMIDIConfig *contracts.CoreMIDIConfig // Configuration for the MIDI client.
	mu             sync.Mutex                // Guards the selected destination.
	dest           *coremidi.Destination     // Currently selected destination, nil until SelectDevice.
}

// NewMIDIClient initializes a new ClientMid for sending MIDI messages on macOS.
func NewMIDIClient(options *contracts.ClientOptions) (contracts.ClientMIDI, error) {
	client, err := coremidi.NewClient(options.CoreMIDIConfig.ClientName)
	if err != nil {
		return nil, err
	}
	port, err := coremidi.NewOutputPort(client, "Output Port")
	if err != nil {
		options.Logger.Error(ErrCreateOutputPort.Error())
		return nil, fmt.Errorf("%w: %v", ErrCreateOutputPort, err)
	}
	options.Logger.Info("MIDI output client successfully created")

	return &ClientMid{
		logger:         options.Logger,
		client:         client,
		outputPort:     port,
		coreMIDIConfig: options.CoreMIDIConfig,
	}, nil
}

// ListDevices retrieves and returns available MIDI destinations.
// If no destinations are found, an error is logged and returned.
func (m *ClientMid) ListDevices() ([]contracts.DeviceInfo, error) {
	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return nil, fmt.Errorf("error listing MIDI destinations: %w", err)
	}
	if len(destinations) == 0 {
		m.logger.Warn(ErrNoMIDIDevices.Error())
		return nil, ErrNoMIDIDevices
	}

	devices := make([]contracts.DeviceInfo, len(destinations))
	for i, dest := range destinations {
		destEntity := dest.Entity()
		devices[i] = contracts.DeviceInfo{
			Name:         dest.Name(),
			EntityName:   destEntity.Name(),
			Manufacturer: destEntity.Manufacturer(),
		}
	}
	return devices, nil
}

// SelectDevice selects a MIDI destination by ID. Subsequent Send calls are
// delivered to it.
func (m *ClientMid) SelectDevice(deviceID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return fmt.Errorf("error retrieving MIDI destinations: %w", err)
	}
	if deviceID < 0 || deviceID >= len(destinations) {
		m.logger.Error(ErrInvalidMIDIDevice.Error())
		return ErrInvalidMIDIDevice
	}

	dest := destinations[deviceID]
	m.dest = &dest
	m.logger.Info("MIDI destination selected",
		m.logger.Field().Int("deviceID", deviceID),
		m.logger.Field().String("deviceName", dest.Name()))
	return nil
}

// Send delivers a single MIDI message to the selected destination.
func (m *ClientMid) Send(msg contracts.MIDI) error {
	m.mu.Lock()
	dest := m.dest
	m.mu.Unlock()

	if dest == nil {
		return ErrNoDeviceSelected
	}
	packet := coremidi.NewPacket([]byte{msg.Command, msg.Note, msg.Velocity}, 0)
	return packet.Send(&m.outputPort, dest)
}

// Stop silences the selected destination and clears the selection. Safe to
// call more than once.
func (m *ClientMid) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.dest == nil {
		return nil
	}
	// All Notes Off on every channel so nothing keeps ringing.
	for ch := byte(0); ch < 16; ch++ {
		packet := coremidi.NewPacket([]byte{0xB0 | ch, 123, 0}, 0)
		if err := packet.Send(&m.outputPort, m.dest); err != nil {
			m.logger.Warn("failed to silence channel",
				m.logger.Field().Uint8("channel", ch),
				m.logger.Field().Error("error", err))
		}
	}
	m.dest = nil
	m.logger.Info("MIDI output stopped")
	return nil
}
