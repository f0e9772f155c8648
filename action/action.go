// Package action registers image operations under a global id with a typed
// signature, so that they can be listed and called generically (menus,
// shortcuts, scripts).
package action

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fordream/goxel/scene"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUnknownAction   = errors.New("unknown action")
	ErrDuplicateAction = errors.New("duplicate action")
	ErrMissingArg      = errors.New("missing argument")
	ErrUnknownArg      = errors.New("unknown argument")
	ErrArgType         = errors.New("argument type mismatch")
	ErrLayerNotFound   = errors.New("layer not found")
)

// Type identifies the values that can be passed to and returned by actions.
type Type int

const (
	TypeVoid Type = iota
	TypeInt
	TypeString
	TypeImage
	TypeLayer
)

func (t Type) String() string {
	switch t {
	case TypeVoid:
		return "void"
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	case TypeImage:
		return "image"
	case TypeLayer:
		return "layer"
	}
	return fmt.Sprintf("type(%d)", int(t))
}

type Arg struct {
	Name string
	Type Type
}

// Sig is an action signature.
type Sig struct {
	Ret  Type
	Args []Arg
}

type Flags int

const (
	// NoChange marks actions that do not touch the image, so no history
	// snapshot is recorded after them.
	NoChange Flags = 1 << iota
)

// Args holds call arguments by name.
type Args map[string]interface{}

// Call is what an action function receives. Arguments are already checked
// against the signature.
type Call struct {
	Args     Args
	Notifier scene.Notifier
}

func (c *Call) Int(name string) int {
	return c.Args[name].(int)
}

func (c *Call) Text(name string) string {
	return c.Args[name].(string)
}

func (c *Call) Image(name string) *scene.Image {
	return c.Args[name].(*scene.Image)
}

func (c *Call) Layer(name string) *scene.Layer {
	return c.Args[name].(*scene.Layer)
}

type Func func(c *Call) interface{}

type Action struct {
	ID    string
	Help  string
	Sig   Sig
	Flags Flags
	Func  Func
}

func (a *Action) String() string {
	return fmt.Sprintf("Action: %s %v", a.ID, a.Sig)
}

type Registry struct {
	actions  map[string]*Action
	notifier scene.Notifier
}

func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]*Action),
	}
}

// Default holds the image actions.
var Default = NewRegistry()

// SetNotifier sets the notifier handed to actions that restore history.
func (r *Registry) SetNotifier(n scene.Notifier) {
	r.notifier = n
}

func (r *Registry) Register(a *Action) error {
	if a.ID == "" || a.Func == nil {
		return fmt.Errorf("register %q: id and func are required", a.ID)
	}
	if _, ok := r.actions[a.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAction, a.ID)
	}
	r.actions[a.ID] = a
	return nil
}

func (r *Registry) MustRegister(actions ...*Action) {
	for _, a := range actions {
		if err := r.Register(a); err != nil {
			panic(err)
		}
	}
}

func (r *Registry) Get(id string) *Action {
	return r.actions[id]
}

// List returns the registered ids sorted.
func (r *Registry) List() []string {
	ids := make([]string, 0, len(r.actions))
	for id := range r.actions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Exec checks args against the action signature and calls it. A missing
// layer argument defaults to the active layer of the image argument, and a
// layer may be given by its uuid. After an action that changes the image one
// history snapshot is pushed.
func (r *Registry) Exec(id string, args Args) (ret interface{}, err error) {
	a := r.Get(id)
	if a == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, id)
	}
	bound, img, err := a.bind(args)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	log.Debugf("exec %s", id)
	ret = a.Func(&Call{Args: bound, Notifier: r.notifier})
	if a.Flags&NoChange == 0 && img != nil {
		img.HistoryPush()
	}
	return ret, nil
}

func (a *Action) bind(args Args) (bound Args, img *scene.Image, err error) {
	for name := range args {
		if !a.hasArg(name) {
			return nil, nil, fmt.Errorf("%w: %s", ErrUnknownArg, name)
		}
	}
	bound = make(Args, len(a.Sig.Args))
	// Images first, layer defaults depend on them.
	for _, arg := range a.Sig.Args {
		if arg.Type != TypeImage {
			continue
		}
		v, ok := args[arg.Name].(*scene.Image)
		if !ok || v == nil {
			return nil, nil, argError(arg, args)
		}
		bound[arg.Name] = v
		if img == nil {
			img = v
		}
	}
	for _, arg := range a.Sig.Args {
		if arg.Type == TypeImage {
			continue
		}
		v, present := args[arg.Name]
		switch arg.Type {
		case TypeLayer:
			if img == nil {
				return nil, nil, fmt.Errorf("%w: %s needs an image", ErrMissingArg, arg.Name)
			}
			var l *scene.Layer
			switch lv := v.(type) {
			case nil:
				if present {
					return nil, nil, argError(arg, args)
				}
				l = img.ActiveLayer()
			case *scene.Layer:
				if lv == nil {
					return nil, nil, argError(arg, args)
				}
				l = lv
			case uuid.UUID:
				if l = img.FindLayer(lv); l == nil {
					return nil, nil, fmt.Errorf("%w: %s", ErrLayerNotFound, lv)
				}
			default:
				return nil, nil, argError(arg, args)
			}
			bound[arg.Name] = l
		case TypeInt:
			if _, ok := v.(int); !ok {
				return nil, nil, argError(arg, args)
			}
			bound[arg.Name] = v
		case TypeString:
			if _, ok := v.(string); !ok {
				return nil, nil, argError(arg, args)
			}
			bound[arg.Name] = v
		}
	}
	return
}

func (a *Action) hasArg(name string) bool {
	for _, arg := range a.Sig.Args {
		if arg.Name == name {
			return true
		}
	}
	return false
}

func argError(arg Arg, args Args) error {
	v, ok := args[arg.Name]
	if !ok {
		return fmt.Errorf("%w: %s (%v)", ErrMissingArg, arg.Name, arg.Type)
	}
	return fmt.Errorf("%w: %s wants %v, got %T", ErrArgType, arg.Name, arg.Type, v)
}
