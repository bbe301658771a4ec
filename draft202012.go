package jsonskema

var draft202012 *vocabulary

func init() {
	draft202012 = newVocabulary(vocabulary{
		draft:              Draft202012,
		metaSchema:         Draft202012.MetaSchemaURL(),
		idKey:              "$id",
		booleanSchemas:     true,
		unknownAnnotations: true,
	},
		// core
		kw("$ref", compileRef),
		kw("$dynamicRef", compileDynamicRef),
		inert("$schema"),
		inert("$id"),
		inert("$anchor"),
		inert("$dynamicAnchor"),
		inert("$vocabulary"),
		inert("$comment"),
		sub("$defs", shapeMap, compileDefinitions),
		sub("definitions", shapeMap, compileDefinitions),
		// applicator
		sub("allOf", shapeArray, compileAllOf),
		sub("anyOf", shapeArray, compileAnyOf),
		sub("oneOf", shapeArray, compileOneOf),
		sub("not", shapeSingle, compileNot),
		sub("if", shapeSingle, compileIf),
		inertSub("then", shapeSingle),
		inertSub("else", shapeSingle),
		sub("dependentSchemas", shapeMap, compileDependentSchemas),
		sub("prefixItems", shapeArray, compilePrefixItems),
		sub("items", shapeSingle, compileItems),
		sub("contains", shapeSingle, compileContains),
		sub("properties", shapeMap, compileProperties),
		sub("patternProperties", shapeMap, compilePatternProperties),
		sub("additionalProperties", shapeSingle, compileAdditionalProperties),
		sub("propertyNames", shapeSingle, compilePropertyNames),
		// validation
		kw("type", compileType),
		kw("enum", compileEnum),
		kw("const", compileConst),
		kw("multipleOf", compileMultipleOf),
		kw("maximum", compileMaximum),
		kw("exclusiveMaximum", compileExclusiveMaximum),
		kw("minimum", compileMinimum),
		kw("exclusiveMinimum", compileExclusiveMinimum),
		kw("maxLength", compileMaxLength),
		kw("minLength", compileMinLength),
		kw("pattern", compilePattern),
		kw("maxItems", compileMaxItems),
		kw("minItems", compileMinItems),
		kw("uniqueItems", compileUniqueItems),
		inert("maxContains"),
		inert("minContains"),
		kw("maxProperties", compileMaxProperties),
		kw("minProperties", compileMinProperties),
		kw("required", compileRequired),
		kw("dependentRequired", compileDependentRequired),
		// format, content, meta-data
		kw("format", compileFormat),
		kw("contentMediaType", compileAnnotation),
		kw("contentEncoding", compileAnnotation),
		sub("contentSchema", shapeSingle, compileAnnotation),
		kw("title", compileAnnotation),
		kw("description", compileAnnotation),
		kw("default", compileAnnotation),
		kw("deprecated", compileAnnotation),
		kw("readOnly", compileAnnotation),
		kw("writeOnly", compileAnnotation),
		kw("examples", compileAnnotation),
		// unevaluated
		late("unevaluatedItems", compileUnevaluatedItems),
		late("unevaluatedProperties", compileUnevaluatedProperties),
	)
}
