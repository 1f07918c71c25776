package wizard

import (
	"context"
)

// Wizard es la máquina de estados del asistente de preferencias.
// No es segura para uso concurrente; Service serializa por sesión.
type Wizard struct {
	state State
	gen   Generator
}

func New(gen Generator) *Wizard {
	return &Wizard{state: initialState(), gen: gen}
}

// Restore retoma un asistente desde un State persistido.
func Restore(st State, gen Generator) *Wizard {
	if st.Step.index() < 0 {
		st = initialState()
	}
	return &Wizard{state: st, gen: gen}
}

func initialState() State {
	return State{
		Step:       StepPetInfo,
		Preference: Preference{Interests: []string{}},
	}
}

func (w *Wizard) Current() Step {
	return w.state.Step
}

// State devuelve una copia.
func (w *Wizard) State() State {
	st := w.state
	st.Preference.Interests = append([]string{}, w.state.Preference.Interests...)
	if w.state.Results != nil {
		st.Results = append([]Package(nil), w.state.Results...)
	}
	return st
}

// Complete registra el input del paso actual y avanza.
// Devuelve false (sin cambios) si el input no corresponde al paso o es inválido.
func (w *Wizard) Complete(ctx context.Context, in StepInput) (bool, error) {
	if in == nil || in.Step() != w.state.Step || !in.Valid() {
		return false, nil
	}

	next := w.state
	in.apply(&next.Preference)

	i := w.state.Step.index()
	if i == len(Steps)-1 {
		results, err := w.gen.Generate(ctx, next.Preference)
		if err != nil {
			return false, err
		}
		next.Step = StepResults
		next.Results = results
	} else {
		next.Step = Steps[i+1]
	}

	w.state = next
	return true, nil
}

// Back retrocede un paso conservando lo ya respondido.
func (w *Wizard) Back() bool {
	i := w.state.Step.index()
	if i <= 0 {
		return false
	}
	w.state.Step = Steps[i-1]
	w.state.Results = nil
	return true
}

func (w *Wizard) Reset() {
	w.state = initialState()
}
