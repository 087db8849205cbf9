package domain

type Stream int

const (
	StreamStdout Stream = iota
	StreamStderr
)

func (s Stream) String() string {
	switch s {
	case StreamStdout:
		return "stdout"
	case StreamStderr:
		return "stderr"
	default:
		return "unknown"
	}
}

type OutputRecord struct {
	Stream Stream
	Text   string
}

func (r OutputRecord) IsError() bool {
	return r.Stream == StreamStderr
}
