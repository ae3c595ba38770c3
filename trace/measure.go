// Package trace writes Chrome trace-event JSON (chrome://tracing, Perfetto)
// around parse calls.
package trace

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

type event struct {
	Name  string            `json:"name"`
	Phase string            `json:"ph"`
	Cat   string            `json:"cat"`
	TS    int64             `json:"ts"`
	PID   int               `json:"pid"`
	TID   int               `json:"tid"`
	Args  map[string]string `json:"args,omitempty"`
}

type MeasureTime struct {
	w     io.WriteCloser
	lock  sync.Mutex
	first bool
	err   error
	now   func() time.Time
}

func NewMeasureTime(w io.WriteCloser) *MeasureTime {
	m := &MeasureTime{w: w, first: true, now: time.Now}
	m.write("{\"traceEvents\": [")
	m.emit(event{
		Name:  "process_name",
		Phase: "M",
		Cat:   "__metadata",
		TS:    m.now().UnixMicro(),
		PID:   1,
		Args:  map[string]string{"name": "csscolor"},
	})
	return m
}

func (m *MeasureTime) Time(name string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.emit(event{Name: name, Phase: "B", Cat: "parse", TS: m.now().UnixMicro(), PID: 1, TID: 1})
}

func (m *MeasureTime) Stop(name string) {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.emit(event{Name: name, Phase: "E", Cat: "parse", TS: m.now().UnixMicro(), PID: 1, TID: 1})
}

// Finish closes the event array and the writer. It returns the first write
// error seen since NewMeasureTime.
func (m *MeasureTime) Finish() error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.write("]}")
	if err := m.w.Close(); err != nil && m.err == nil {
		m.err = err
	}
	return m.err
}

func (m *MeasureTime) emit(e event) {
	data, err := json.Marshal(e)
	if err != nil {
		m.err = err
		return
	}
	if !m.first {
		m.write(", ")
	}
	m.first = false
	m.write(string(data))
}

func (m *MeasureTime) write(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}
