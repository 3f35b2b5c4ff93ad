package schema

import (
	"github.com/invopop/jsonschema"
)

func generateSchema[T any]() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

// APISchemas describes the request and response bodies of the HTTP API.
var APISchemas = map[string]*jsonschema.Schema{
	"project":                 generateSchema[Project](),
	"screenplay_request":      generateSchema[ScreenplayRequest](),
	"character_request":       generateSchema[CharacterRequest](),
	"identity_request":        generateSchema[IdentityRequest](),
	"identity_script_request": generateSchema[IdentityScriptRequest](),
	"sound_request":           generateSchema[SoundRequest](),
	"clip_request":            generateSchema[ClipRequest](),
	"production_request":      generateSchema[ProductionRequest](),
	"video_request":           generateSchema[VideoRequest](),
	"sonic_plan":              generateSchema[SonicPlan](),
	"clip_blueprint":          generateSchema[ClipBlueprint](),
	"plan_result":             generateSchema[PlanResult](),
	"render_result":           generateSchema[RenderResult](),
}
