package ufmt

import "sync"

// Processor rewrites a byte on its way to the output.
type Processor func(c byte) byte

// Hook observes a byte after processing, before it reaches the output.
type Hook func(c byte)

// Pipeline is a Sink that runs each byte through its processors in order,
// reports the result to every hook, then forwards it to the target.
type Pipeline struct {
	target Sink

	mu         sync.RWMutex
	nextID     int
	processors []pipelineEntry[Processor]
	hooks      []pipelineEntry[Hook]
}

type pipelineEntry[F any] struct {
	id int
	fn F
}

// Handle identifies a processor or hook added to a Pipeline.
type Handle int

// NewPipeline creates a pipeline writing to target.
func NewPipeline(target Sink) *Pipeline {
	return &Pipeline{target: target}
}

// AddProcessor appends fn to the processor chain.
func (p *Pipeline) AddProcessor(fn Processor) Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	p.processors = append(p.processors, pipelineEntry[Processor]{id: p.nextID, fn: fn})
	return Handle(p.nextID)
}

// AddHook appends fn to the hooks.
func (p *Pipeline) AddHook(fn Hook) Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.nextID++
	p.hooks = append(p.hooks, pipelineEntry[Hook]{id: p.nextID, fn: fn})
	return Handle(p.nextID)
}

// Remove drops the processor or hook identified by h. It reports whether
// anything was removed.
func (p *Pipeline) Remove(h Handle) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	var ok bool
	p.processors, ok = removeEntry(p.processors, int(h))
	if ok {
		return true
	}
	p.hooks, ok = removeEntry(p.hooks, int(h))
	return ok
}

func removeEntry[F any](entries []pipelineEntry[F], id int) ([]pipelineEntry[F], bool) {
	for i, e := range entries {
		if e.id == id {
			return append(entries[:i:i], entries[i+1:]...), true
		}
	}
	return entries, false
}

// PutByte processes c and forwards it. Processors and hooks run outside the
// lock, so they may add or remove entries; changes apply from the next byte.
func (p *Pipeline) PutByte(c byte) {
	p.mu.RLock()
	processors, hooks := p.processors, p.hooks
	p.mu.RUnlock()
	for _, e := range processors {
		c = e.fn(c)
	}
	for _, e := range hooks {
		e.fn(c)
	}
	if p.target != nil {
		p.target.PutByte(c)
	}
}
