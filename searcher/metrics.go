package searcher

import "time"

type SearchMetric struct {
	Depth    int
	Score    int
	Duration time.Duration
	Nodes    int // Every node entered, frontier included
	Leaves   int // Nodes scored by the evaluator
	Cutoffs  int // Nodes whose remaining children were pruned
}

// Collector records the cost of a single decision. A decision runs on one
// goroutine, so implementations need no synchronisation.
type Collector interface {
	Start()
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.nodes, m.leaves, m.cutoffs = 0, 0, 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Cutoffs:  m.cutoffs,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start()                 {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) AddLeaf()               {}
func (dummyCollector) AddCutoff()             {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
