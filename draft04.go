package jsonskema

var draft04 *vocabulary

func init() {
	draft04 = newVocabulary(vocabulary{
		draft:           Draft04,
		metaSchema:      Draft04.MetaSchemaURL(),
		idKey:           "id",
		refOverrides:    true,
		idAnchors:       true,
		formatAssertion: true,
	},
		kw("$ref", compileRef),
		inert("$schema"),
		inert("id"),
		sub("definitions", shapeMap, compileDefinitions),
		kw("type", compileType),
		kw("enum", compileEnum),
		sub("allOf", shapeArray, compileAllOf),
		sub("anyOf", shapeArray, compileAnyOf),
		sub("oneOf", shapeArray, compileOneOf),
		sub("not", shapeSingle, compileNot),
		kw("multipleOf", compileMultipleOf),
		kw("maximum", compileMaximum),
		kw("exclusiveMaximum", compileExclusiveFlag),
		kw("minimum", compileMinimum),
		kw("exclusiveMinimum", compileExclusiveFlag),
		kw("maxLength", compileMaxLength),
		kw("minLength", compileMinLength),
		kw("pattern", compilePattern),
		kw("format", compileFormat),
		sub("items", shapeSingleOrArray, compileItems),
		sub("additionalItems", shapeSingle, compileAdditionalItems),
		kw("maxItems", compileMaxItems),
		kw("minItems", compileMinItems),
		kw("uniqueItems", compileUniqueItems),
		kw("maxProperties", compileMaxProperties),
		kw("minProperties", compileMinProperties),
		kw("required", compileRequired),
		sub("properties", shapeMap, compileProperties),
		sub("patternProperties", shapeMap, compilePatternProperties),
		sub("additionalProperties", shapeSingle, compileAdditionalProperties),
		sub("dependencies", shapeDependencies, compileDependencies),
		kw("title", compileAnnotation),
		kw("description", compileAnnotation),
		kw("default", compileAnnotation),
	)
}
