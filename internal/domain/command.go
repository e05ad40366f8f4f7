package domain

// Command is one of the fixed diagnostic commands.
type Command uint8

const (
	CommandStatus Command = iota
	CommandReadSensors
	CommandCalibrate
)

// Commands is the dispatch order.
var Commands = [...]Command{CommandStatus, CommandReadSensors, CommandCalibrate}

func (c Command) String() string {
	switch c {
	case CommandStatus:
		return "STATUS"
	case CommandReadSensors:
		return "READ_SENSORS"
	case CommandCalibrate:
		return "CALIBRATE"
	default:
		return "UNKNOWN"
	}
}

// CommandMessage is a synthesized command with its dispatch id.
type CommandMessage struct {
	Command Command `json:"command"`
	ID      uint32  `json:"cmd_id"`
}

// CommandFor returns the command selected round-robin by id.
func CommandFor(id uint32) CommandMessage {
	return CommandMessage{Command: Commands[id%uint32(len(Commands))], ID: id}
}
