package model

// Sample returns the starter model written by "dartgen init".
func Sample() *Document {
	return &Document{
		Files: []FileModel{{
			Name: "user",
			Imports: []ImportModel{
				{Path: "package:json_annotation/json_annotation.dart"},
			},
			Parts: []string{"user.g.dart"},
			Classes: []ClassModel{
				{
					Name: "Role",
					Kind: "enum",
					Entries: []EnumEntryModel{
						{Name: "admin", Annotations: []AnnotationModel{{Name: "JsonValue", Args: []string{"'admin'"}}}},
						{Name: "member", Annotations: []AnnotationModel{{Name: "JsonValue", Args: []string{"'member'"}}}},
					},
				},
				{
					Name:        "User",
					Docs:        []string{"A registered user."},
					Annotations: []AnnotationModel{{Name: "JsonSerializable", Call: true}},
					Properties: []PropertyModel{
						{Name: "id", Type: "int", Modifiers: []string{"final"}},
						{Name: "name", Type: "String", Modifiers: []string{"final"}},
						{Name: "role", Type: "Role", Modifiers: []string{"final"}},
						{Name: "email", Type: "String", Nullable: true, Modifiers: []string{"final"}},
					},
					Constructors: []ConstructorModel{
						{
							Const: true,
							Parameters: []ParameterModel{
								{Name: "id", Required: true},
								{Name: "name", Required: true},
								{Name: "role", Required: true},
								{Name: "email", Named: true},
							},
						},
						{
							Name:    "fromJson",
							Factory: true,
							Lambda:  true,
							Parameters: []ParameterModel{
								{Name: "json", Type: "Map<String, dynamic>"},
							},
							Body: "_$UserFromJson(json)",
						},
					},
					Functions: []FunctionModel{
						{
							Name:    "toJson",
							Returns: "Map<String, dynamic>",
							Lambda:  true,
							Body:    "_$UserToJson(this)",
						},
					},
				},
			},
		}},
	}
}
