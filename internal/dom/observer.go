package dom

import "slices"

// MutationType classifies a MutationRecord.
type MutationType int

const (
	MutationChildList MutationType = iota
	MutationAttributes
	MutationCharacterData
)

func (t MutationType) String() string {
	switch t {
	case MutationChildList:
		return "childList"
	case MutationAttributes:
		return "attributes"
	case MutationCharacterData:
		return "characterData"
	default:
		return "unknown"
	}
}

// MutationRecord describes a single change to an element.
type MutationRecord struct {
	Type          MutationType
	Target        *Element
	AttributeName string
	OldValue      string
}

// MutationObserverInit selects which changes an observation reports.
type MutationObserverInit struct {
	ChildList     bool
	Subtree       bool
	Attributes    bool
	CharacterData bool
}

func (o MutationObserverInit) wants(t MutationType) bool {
	switch t {
	case MutationChildList:
		return o.ChildList
	case MutationAttributes:
		return o.Attributes
	case MutationCharacterData:
		return o.CharacterData
	}
	return false
}

// MutationCallback receives the records queued since the previous delivery.
type MutationCallback func(records []MutationRecord, observer *MutationObserver)

type observation struct {
	target *Element
	opts   MutationObserverInit
}

// MutationObserver queues records for the elements it observes and delivers
// them in batches during Page.Layout, once element geometry is current.
type MutationObserver struct {
	page     *Page
	callback MutationCallback
	targets  []observation
	pending  []MutationRecord
}

// NewMutationObserver creates an observer on the page. It observes nothing
// until Observe is called.
func (p *Page) NewMutationObserver(fn MutationCallback) *MutationObserver {
	return &MutationObserver{page: p, callback: fn}
}

// Observe starts (or reconfigures) observation of target.
func (o *MutationObserver) Observe(target *Element, opts MutationObserverInit) {
	if target == nil {
		return
	}
	for i := range o.targets {
		if o.targets[i].target == target {
			o.targets[i].opts = opts
			return
		}
	}
	if len(o.targets) == 0 {
		o.page.observers = append(o.page.observers, o)
	}
	o.targets = append(o.targets, observation{target: target, opts: opts})
}

// Disconnect stops all observation and drops undelivered records.
func (o *MutationObserver) Disconnect() {
	o.targets = nil
	o.pending = nil
	o.page.observers = slices.DeleteFunc(o.page.observers, func(x *MutationObserver) bool {
		return x == o
	})
}

// TakeRecords returns and clears the undelivered records.
func (o *MutationObserver) TakeRecords() []MutationRecord {
	records := o.pending
	o.pending = nil
	return records
}

func (o *MutationObserver) enqueue(r MutationRecord) {
	for _, obs := range o.targets {
		if !obs.opts.wants(r.Type) {
			continue
		}
		if obs.target == r.Target || (obs.opts.Subtree && obs.target.contains(r.Target)) {
			o.pending = append(o.pending, r)
			return
		}
	}
}
