package playback

// Technique is the negotiated playback method, in increasing order of
// server-side processing.
type Technique int

const (
	DirectPlay Technique = iota
	DirectStream
	Transcode
)

// String returns the PlayMethod name the server expects in session reports.
func (t Technique) String() string {
	switch t {
	case Transcode:
		return "Transcode"
	case DirectStream:
		return "DirectStream"
	default:
		return "DirectPlay"
	}
}

// TechniqueFromCode maps the server's technique code ("0"/"1"/"2") to a
// Technique. Unknown codes fall back to DirectPlay.
func TechniqueFromCode(code string) Technique {
	switch code {
	case "2":
		return Transcode
	case "1":
		return DirectStream
	default:
		return DirectPlay
	}
}
