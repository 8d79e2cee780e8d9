package session

import "fmt"

// EntryKind tags a transcript entry.
type EntryKind int

const (
	KindQuestion EntryKind = iota
	KindAnswer
	KindEvaluation
)

func (k EntryKind) String() string {
	switch k {
	case KindQuestion:
		return "interviewer"
	case KindAnswer:
		return "candidate"
	case KindEvaluation:
		return "evaluation"
	default:
		return fmt.Sprintf("EntryKind(%d)", int(k))
	}
}

func (k EntryKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry is one line of the chat history.
type Entry struct {
	Kind EntryKind `json:"kind" yaml:"kind"`
	Text string    `json:"text" yaml:"text"`
}

// State is the lifecycle position of a session.
type State int

const (
	NotStarted State = iota
	InProgress
	Completed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
