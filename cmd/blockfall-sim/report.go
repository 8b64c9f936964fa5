package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/driver"
)

type Report struct {
	// Configuration
	Games      int
	MaxFrames  int
	FrameDelta time.Duration
	Seed       uint64
	Randomizer string

	// Results
	TotalFrames   int64
	TotalTime     time.Duration
	FrameTime     Stats
	Played        []driver.GameSummary
	Best          driver.GameSummary
	AvgScore      float64
	AvgLines      float64
	Clears        [5]int
	Systems       []driver.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) collect(sim *simulation) {
	r.Played = sim.session.Games()
	r.Best, _ = sim.session.Best()
	for _, g := range r.Played {
		r.AvgScore += float64(g.Score)
		r.AvgLines += float64(g.Lines)
	}
	if n := len(r.Played); n > 0 {
		r.AvgScore /= float64(n)
		r.AvgLines /= float64(n)
	}
	for lines := 1; lines < len(r.Clears); lines++ {
		r.Clears[lines] = sim.session.Clears(lines)
	}
	r.Systems = sim.driver.GetStats().Systems
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Simulation Report

## Configuration
- **Games:** {{.Games}} (frame limit {{.MaxFrames}}, {{.FrameDelta}} per frame)
- **Seed:** {{.Seed}} ({{.Randomizer}})

## Games
{{range $i, $g := .Played}}- #{{inc $i}} {{$g.ID}}: score {{$g.Score}}, lines {{$g.Lines}}, level {{$g.Level}}, pieces {{$g.Pieces}}
{{end}}
- **Best:** {{.Best.Score}} ({{.Best.Lines}} lines)
- **Average:** {{printf "%.1f" .AvgScore}} points, {{printf "%.1f" .AvgLines}} lines
- **Clears:** single {{index .Clears 1}}, double {{index .Clears 2}}, triple {{index .Clears 3}}, tetris {{index .Clears 4}}

## Performance
- **Total Frames:** {{.TotalFrames}}
- **Total Time:** {{.TotalTime}}
- **Frame Time:** avg {{.FrameTime.Avg}}, min {{.FrameTime.Min}}, max {{.FrameTime.Max}}
{{range .Systems}}  - {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end)
`

	fm := template.FuncMap{
		"inc": func(i int) int {
			return i + 1
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
