package operation

// Parameter is one entry of a tool's parameter schema: a declared variable
// mapped to its JSON schema type.
type Parameter struct {
	Name     string
	JSONType string // element type when IsArray is set
	Required bool
	IsArray  bool
}

// scalarTypes maps GraphQL scalar types to JSON schema types. Unrecognized
// declared types (enums, custom scalars, input objects) degrade to string.
var scalarTypes = map[string]string{
	"String":  "string",
	"Int":     "number",
	"Float":   "number",
	"Boolean": "boolean",
	"ID":      "string",
}

// ParameterSchema maps declared variables to schema parameters, preserving
// declaration order.
func ParameterSchema(vars []Variable) []Parameter {
	params := make([]Parameter, 0, len(vars))
	for _, v := range vars {
		jsonType, ok := scalarTypes[v.Type]
		if !ok {
			jsonType = "string"
		}
		params = append(params, Parameter{
			Name:     v.Name,
			JSONType: jsonType,
			Required: v.Required,
			IsArray:  v.IsArray,
		})
	}
	return params
}
