package dom

import (
	"fmt"
	"sync"
)

// WarningKind classifies non-fatal anomalies.
type WarningKind int

// Kinds of warnings.
const (
	SelfClosingContent WarningKind = iota + 1 // content added to a self-closing element
	InvalidAttribute                          // attribute key skipped at render time
	MismatchedTag                             // close tag implicitly closed open elements
	UnmatchedCloseTag                         // close tag without open element, ignored
	AttributeCollision                        // two spellings of the same attribute key
	MultipleRoots                             // only the first of several roots returned
	UnclosedTag                               // element still open at end of input
)

var warningNames = map[WarningKind]string{
	SelfClosingContent: "self-closing-content",
	InvalidAttribute:   "invalid-attribute",
	MismatchedTag:      "mismatched-tag",
	UnmatchedCloseTag:  "unmatched-close-tag",
	AttributeCollision: "attribute-collision",
	MultipleRoots:      "multiple-roots",
	UnclosedTag:        "unclosed-tag",
}

func (k WarningKind) String() string {
	if s, ok := warningNames[k]; ok {
		return s
	}
	return fmt.Sprintf("warning-%d", int(k))
}

// Warning reports an anomaly which did not stop an operation.
type Warning struct {
	Kind    WarningKind
	Tag     string // tag of the element concerned, if any
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Kind, w.Message)
}

// WarningHandler receives warnings.
type WarningHandler func(Warning)

var warnings struct {
	sync.RWMutex
	handler WarningHandler
}

// SetWarningHandler installs a process-wide handler for warnings and returns
// the previous one. nil switches forwarding off; warnings are traced anyway.
func SetWarningHandler(h WarningHandler) WarningHandler {
	warnings.Lock()
	defer warnings.Unlock()
	prev := warnings.handler
	warnings.handler = h
	return prev
}

// Warn traces w and forwards it to the process-wide handler.
func Warn(w Warning) {
	Report(w, nil)
}

// Report traces w and forwards it to h or, if h is nil, to the
// process-wide handler.
func Report(w Warning, h WarningHandler) {
	tracer().Infof("warning %s", w)
	if h == nil {
		warnings.RLock()
		h = warnings.handler
		warnings.RUnlock()
	}
	if h != nil {
		h(w)
	}
}
