package supervisor

type State int

const (
	// Idle: no devices known yet.
	Idle State = iota
	// AwaitingPlot: devices known, no position seen this cycle.
	AwaitingPlot
	// Connected: positions flowing, map requested or live.
	Connected
	// ErrorCountdown: backend failed, retry pending.
	ErrorCountdown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingPlot:
		return "awaiting_plot"
	case Connected:
		return "connected"
	case ErrorCountdown:
		return "error_countdown"
	default:
		return "unknown"
	}
}
