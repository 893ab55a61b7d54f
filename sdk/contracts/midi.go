package contracts

// MIDI represents a short MIDI message with a timestamp, command, note, and velocity.
type MIDI struct {
	Timestamp uint64 // Timestamp indicates when the message was produced, in nanoseconds.
	Command   byte   // Command specifies the status byte (e.g., Note On, Note Off) including the channel.
	Note      byte   // Note represents the MIDI key number (0-127).
	Velocity  byte   // Velocity indicates how hard the note is struck (0-127).
}

// ClientMIDI defines an interface for sending MIDI messages to a device.
type ClientMIDI interface {
	Stop() error                        // Silences the device and releases resources.
	ListDevices() ([]DeviceInfo, error) // Lists all available MIDI output devices.
	SelectDevice(deviceID int) error    // Selects a MIDI output device by its ID.
	Send(msg MIDI) error                // Delivers a single MIDI message to the selected device.
}
