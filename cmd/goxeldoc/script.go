package main

import (
	"fmt"
	"io"

	"github.com/fordream/goxel/action"
	"github.com/fordream/goxel/scene"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Script is a list of actions run against one image.
type Script struct {
	Steps []Step `yaml:"steps"`
}

type Step struct {
	Action string `yaml:"action"`
	// Layer is a position in the layer list; the active layer when unset.
	Layer *int `yaml:"layer"`
	Ofs   *int `yaml:"ofs"`
	// Hide hides the target layer before the action runs.
	Hide bool `yaml:"hide"`
}

func LoadScript(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	return &s, nil
}

func (s *Script) Run(img *scene.Image, actions *action.Registry) (err error) {
	for i, step := range s.Steps {
		args := action.Args{"image": img}
		target := img.ActiveLayer()
		if step.Layer != nil {
			layers := img.Layers()
			if *step.Layer < 0 || *step.Layer >= len(layers) {
				return fmt.Errorf("step %d: layer %d out of range (%d layers)", i, *step.Layer, len(layers))
			}
			target = layers[*step.Layer]
			if takesArg(actions.Get(step.Action), "layer") {
				args["layer"] = target
			}
		}
		if step.Ofs != nil {
			args["ofs"] = *step.Ofs
		}
		if step.Hide {
			target.Visible = false
		}
		log.Infof("step %d: %s", i, step.Action)
		_, err = actions.Exec(step.Action, args)
		if err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return
}

func takesArg(a *action.Action, name string) bool {
	if a == nil {
		return false
	}
	for _, arg := range a.Sig.Args {
		if arg.Name == name {
			return true
		}
	}
	return false
}
