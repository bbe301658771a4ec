package jsonskema

var draft07 *vocabulary

func init() {
	draft07 = newVocabulary(vocabulary{
		draft:           Draft07,
		metaSchema:      Draft07.MetaSchemaURL(),
		idKey:           "$id",
		booleanSchemas:  true,
		refOverrides:    true,
		idAnchors:       true,
		formatAssertion: true,
	},
		kw("$ref", compileRef),
		inert("$schema"),
		inert("$id"),
		inert("$comment"),
		sub("definitions", shapeMap, compileDefinitions),
		kw("type", compileType),
		kw("enum", compileEnum),
		kw("const", compileConst),
		sub("allOf", shapeArray, compileAllOf),
		sub("anyOf", shapeArray, compileAnyOf),
		sub("oneOf", shapeArray, compileOneOf),
		sub("not", shapeSingle, compileNot),
		sub("if", shapeSingle, compileIf),
		inertSub("then", shapeSingle),
		inertSub("else", shapeSingle),
		kw("multipleOf", compileMultipleOf),
		kw("maximum", compileMaximum),
		kw("exclusiveMaximum", compileExclusiveMaximum),
		kw("minimum", compileMinimum),
		kw("exclusiveMinimum", compileExclusiveMinimum),
		kw("maxLength", compileMaxLength),
		kw("minLength", compileMinLength),
		kw("pattern", compilePattern),
		kw("format", compileFormat),
		sub("items", shapeSingleOrArray, compileItems),
		sub("additionalItems", shapeSingle, compileAdditionalItems),
		kw("maxItems", compileMaxItems),
		kw("minItems", compileMinItems),
		kw("uniqueItems", compileUniqueItems),
		sub("contains", shapeSingle, compileContains),
		kw("maxProperties", compileMaxProperties),
		kw("minProperties", compileMinProperties),
		kw("required", compileRequired),
		sub("properties", shapeMap, compileProperties),
		sub("patternProperties", shapeMap, compilePatternProperties),
		sub("additionalProperties", shapeSingle, compileAdditionalProperties),
		sub("dependencies", shapeDependencies, compileDependencies),
		sub("propertyNames", shapeSingle, compilePropertyNames),
		kw("contentMediaType", compileAnnotation),
		kw("contentEncoding", compileAnnotation),
		kw("title", compileAnnotation),
		kw("description", compileAnnotation),
		kw("default", compileAnnotation),
		kw("readOnly", compileAnnotation),
		kw("writeOnly", compileAnnotation),
		kw("examples", compileAnnotation),
	)
}
