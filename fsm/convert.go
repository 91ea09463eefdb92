package fsm

// Request describes one conversion.
type Request struct {
	Name       string
	InputPath  string
	OutputPath string // empty selects DefaultOutputPath
	Notes      string
	Mermaid    bool // also write a .mmd next to the DOT file
}

// Convert loads, validates and renders req.InputPath. A definition with
// problems is never rendered; the problems come back as *ValidationError.
func (r *Renderer) Convert(req Request) (string, error) {
	def, err := Load(req.InputPath)
	if err != nil {
		return "", err
	}

	if problems := Validate(def); len(problems) > 0 {
		r.log.Warnw("Validation failed", "input", req.InputPath, "errors", len(problems))
		return "", &ValidationError{Problems: problems}
	}

	for _, w := range Analyze(def) {
		r.log.Warn(w)
	}

	path, err := r.Render(def, req.Name, req.OutputPath, req.Notes)
	if err != nil {
		return "", err
	}

	if req.Mermaid {
		mmd := MermaidPath(path)
		if err := WriteMermaidFile(def, mmd); err != nil {
			return path, err
		}
		r.log.Infow("Wrote Mermaid file", "path", mmd)
	}
	return path, nil
}
