package propedit

import (
	"golang.org/x/text/language"

	"github.com/wagiedev/mkvtoolnix-go/internal/args"
	langtable "github.com/wagiedev/mkvtoolnix-go/internal/language"
	"github.com/wagiedev/mkvtoolnix-go/internal/selector"
)

// Property names understood by mkvpropedit.
const (
	PropertyLanguage     = "language"
	PropertyLanguageIETF = "language-ietf"
	PropertyFlagDefault  = "flag-default"
	PropertyFlagEnabled  = "flag-enabled"
	PropertyFlagForced   = "flag-forced"
	PropertyName         = "name"
	PropertyTitle        = "title"
)

// Action is one property operation inside an --edit block.
type Action interface {
	args.Emitter
	isAction()
}

// Compile-time verification of the closed action set.
var (
	_ Action = Add{}
	_ Action = Set{}
	_ Action = Delete{}
)

// Add adds a property, even if one already exists.
type Add struct {
	Name  string
	Value string
}

// Set sets a property, adding it when missing.
type Set struct {
	Name  string
	Value string
}

// Delete removes a property.
type Delete struct {
	Name string
}

func (Add) isAction()    {}
func (Set) isAction()    {}
func (Delete) isAction() {}

// Args implements args.Emitter.
func (a Add) Args() []string { return []string{"--add", a.Name + "=" + a.Value} }

// Args implements args.Emitter.
func (a Set) Args() []string { return []string{"--set", a.Name + "=" + a.Value} }

// Args implements args.Emitter.
func (a Delete) Args() []string { return []string{"--delete", a.Name} }

// PropertyEdit is an ordered list of actions applied to one selector.
type PropertyEdit struct {
	selector selector.Edit
	actions  []Action
}

// NewPropertyEdit returns an empty edit of sel.
func NewPropertyEdit(sel selector.Edit) *PropertyEdit {
	return &PropertyEdit{selector: sel}
}

// Selector returns the edited target.
func (e *PropertyEdit) Selector() selector.Edit { return e.selector }

// Actions returns a copy of the recorded actions, in call order.
func (e *PropertyEdit) Actions() []Action {
	out := make([]Action, len(e.actions))
	copy(out, e.actions)

	return out
}

// Add appends an Add action.
func (e *PropertyEdit) Add(name, value string) *PropertyEdit {
	e.actions = append(e.actions, Add{Name: name, Value: value})

	return e
}

// Set appends a Set action.
func (e *PropertyEdit) Set(name, value string) *PropertyEdit {
	e.actions = append(e.actions, Set{Name: name, Value: value})

	return e
}

// Delete appends a Delete action.
func (e *PropertyEdit) Delete(name string) *PropertyEdit {
	e.actions = append(e.actions, Delete{Name: name})

	return e
}

// SetLanguageCode sets the language property to a raw code.
func (e *PropertyEdit) SetLanguageCode(code string) *PropertyEdit {
	return e.Set(PropertyLanguage, code)
}

// SetLanguage sets the language property from a resolved language.
func (e *PropertyEdit) SetLanguage(l langtable.Language) *PropertyEdit {
	return e.Set(PropertyLanguage, l.Code())
}

// SetUndeterminedLanguage sets the language property to "und".
func (e *PropertyEdit) SetUndeterminedLanguage() *PropertyEdit {
	return e.Set(PropertyLanguage, langtable.Undetermined)
}

// SetLanguageIETF sets the BCP 47 language property.
func (e *PropertyEdit) SetLanguageIETF(tag language.Tag) *PropertyEdit {
	return e.Set(PropertyLanguageIETF, tag.String())
}

// SetIsDefault sets the default-track flag.
func (e *PropertyEdit) SetIsDefault(v bool) *PropertyEdit {
	return e.Set(PropertyFlagDefault, args.Bool(v))
}

// SetIsEnabled sets the enabled-track flag.
func (e *PropertyEdit) SetIsEnabled(v bool) *PropertyEdit {
	return e.Set(PropertyFlagEnabled, args.Bool(v))
}

// SetIsForced sets the forced-display flag.
func (e *PropertyEdit) SetIsForced(v bool) *PropertyEdit {
	return e.Set(PropertyFlagForced, args.Bool(v))
}

// SetName sets the track name.
func (e *PropertyEdit) SetName(name string) *PropertyEdit {
	return e.Set(PropertyName, name)
}

// DeleteName removes the track name.
func (e *PropertyEdit) DeleteName() *PropertyEdit {
	return e.Delete(PropertyName)
}

// SetOrDeleteName sets the name, or removes it when name is empty.
func (e *PropertyEdit) SetOrDeleteName(name string) *PropertyEdit {
	if name == "" {
		return e.DeleteName()
	}

	return e.SetName(name)
}

// SetTitle sets the segment title. Only meaningful on segment info edits.
func (e *PropertyEdit) SetTitle(title string) *PropertyEdit {
	return e.Set(PropertyTitle, title)
}

// Args implements args.Emitter. An edit without actions emits nothing.
func (e *PropertyEdit) Args() []string {
	if len(e.actions) == 0 {
		return nil
	}

	out := make([]string, 0, 2+2*len(e.actions))
	out = append(out, "--edit", e.selector.Token())

	for _, a := range e.actions {
		out = append(out, a.Args()...)
	}

	return out
}
