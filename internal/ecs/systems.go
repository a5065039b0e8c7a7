package ecs

// StageFunc is one step of a tick. It runs over the whole world.
type StageFunc func(w *World, dt float32)

// Stage is a named StageFunc.
type Stage struct {
	Name string
	Run  StageFunc
}

// Pipeline runs its stages in the order given, once per tick. There is no
// scheduler; order is the slice order.
type Pipeline struct {
	stages []Stage
}

// NewPipeline builds a pipeline from stages in execution order.
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Tick runs every stage once.
func (p *Pipeline) Tick(w *World, dt float32) {
	for _, s := range p.stages {
		s.Run(w, dt)
	}
}

// Names lists the stage names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name
	}
	return names
}
