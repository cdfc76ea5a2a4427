package dto

// Definition is the on-disk shape of a Switchboard project file.
// It uses "mapstructure" tags so loosely-typed YAML maps decode cleanly.
type Definition struct {
	Components []ComponentDef    `json:"components" mapstructure:"components"`
	Aliases    map[string]string `json:"aliases" mapstructure:"aliases"`
}

// ComponentDef declares one component and its nested sub-tree.
type ComponentDef struct {
	Name        string         `json:"name" mapstructure:"name"`
	Description string         `json:"description" mapstructure:"description"`
	Handlers    []HandlerDef   `json:"handlers" mapstructure:"handlers"`
	Components  []ComponentDef `json:"components" mapstructure:"components"`
}

// HandlerDef declares one handler. Guard predicates are code, not data, so
// they never appear in project files; hosts attach them programmatically.
type HandlerDef struct {
	Key           string   `json:"key" mapstructure:"key"`
	Intents       []string `json:"intents" mapstructure:"intents"`
	GlobalIntents []string `json:"global_intents" mapstructure:"global_intents"`
	SubState      string   `json:"sub_state" mapstructure:"sub_state"`
	Platforms     []string `json:"platforms" mapstructure:"platforms"`
}
