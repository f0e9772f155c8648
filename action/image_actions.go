package action

var imageArg = Arg{"image", TypeImage}
var layerArg = Arg{"layer", TypeLayer}

// ImageActions returns the layer and history actions of an image.
func ImageActions() []*Action {
	return []*Action{
		{
			ID:   "img_new_layer",
			Help: "Add a new layer to the image",
			Sig:  Sig{Ret: TypeLayer, Args: []Arg{imageArg}},
			Func: func(c *Call) interface{} {
				return c.Image("image").AddLayer()
			},
		},
		{
			ID:   "img_del_layer",
			Help: "Delete the active layer",
			Sig:  Sig{Ret: TypeVoid, Args: []Arg{imageArg, layerArg}},
			Func: func(c *Call) interface{} {
				c.Image("image").DeleteLayer(c.Layer("layer"))
				return nil
			},
		},
		{
			ID:   "img_move_layer",
			Help: "Move the active layer",
			Sig:  Sig{Ret: TypeVoid, Args: []Arg{imageArg, layerArg, {"ofs", TypeInt}}},
			Func: func(c *Call) interface{} {
				c.Image("image").MoveLayer(c.Layer("layer"), c.Int("ofs"))
				return nil
			},
		},
		{
			ID:   "img_duplicate_layer",
			Help: "Duplicate the active layer",
			Sig:  Sig{Ret: TypeLayer, Args: []Arg{imageArg, layerArg}},
			Func: func(c *Call) interface{} {
				return c.Image("image").DuplicateLayer(c.Layer("layer"))
			},
		},
		{
			ID:   "img_merge_visible_layers",
			Help: "Merge all the visible layers",
			Sig:  Sig{Ret: TypeVoid, Args: []Arg{imageArg}},
			Func: func(c *Call) interface{} {
				c.Image("image").MergeVisibleLayers()
				return nil
			},
		},
		{
			ID:    "undo",
			Help:  "Undo the last change",
			Sig:   Sig{Ret: TypeVoid, Args: []Arg{imageArg}},
			Flags: NoChange,
			Func: func(c *Call) interface{} {
				c.Image("image").Undo(c.Notifier)
				return nil
			},
		},
		{
			ID:    "redo",
			Help:  "Redo the last undone change",
			Sig:   Sig{Ret: TypeVoid, Args: []Arg{imageArg}},
			Flags: NoChange,
			Func: func(c *Call) interface{} {
				c.Image("image").Redo(c.Notifier)
				return nil
			},
		},
	}
}

func init() {
	Default.MustRegister(ImageActions()...)
}
