package controller

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ThomasMo54/teaching-shop-example/registry"
	"github.com/ThomasMo54/teaching-shop-example/utils"

	"gorm.io/gorm/schema"
)

// FieldInfo is the explicit schema description of one field, consumed by the
// rendering front-end instead of reflecting over models itself.
type FieldInfo struct {
	Field     string `json:"field"`
	Column    string `json:"column"`
	Label     string `json:"label"`
	Type      string `json:"type"`
	Primary   bool   `json:"primary"`
	Required  bool   `json:"required"`
	MaxLength int    `json:"maxLength,omitempty"`
	Updatable bool   `json:"updatable"`
	Creatable bool   `json:"creatable"`
}

type RelationInfo struct {
	Field      string `json:"field"`
	Label      string `json:"label"`
	ForeignKey string `json:"foreignKey"`
	References string `json:"references"`
	Type       string `json:"type"`
	Endpoint   string `json:"endpoint,omitempty"`
}

type StructInfo struct {
	Name        string         `json:"name"`
	Label       string         `json:"label"`
	Fields      []FieldInfo    `json:"fields"`
	Relations   []RelationInfo `json:"relations"`
	ListDisplay []string       `json:"listDisplay"`
}

func (a *AdminController) structInfo(entry *registry.Entry) StructInfo {
	info := StructInfo{
		Name:        entry.Name,
		Label:       entry.Label(),
		Fields:      []FieldInfo{},
		Relations:   []RelationInfo{},
		ListDisplay: entry.Columns(),
	}

	for _, field := range entry.Schema.Fields {
		if field.DBName != "" {
			info.Fields = append(info.Fields, GetFieldInfo(field))
		}
	}

	for key, rel := range entry.Schema.Relationships.Relations {
		if strings.HasPrefix(key, "_") {
			continue
		}
		info.Relations = append(info.Relations, a.relationInfo(rel))
	}
	sort.SliceStable(info.Relations, func(i, j int) bool {
		return info.Relations[i].Label < info.Relations[j].Label
	})

	return info
}

func GetFieldInfo(field *schema.Field) FieldInfo {
	fieldInfo := FieldInfo{
		Field:     field.Name,
		Column:    field.DBName,
		Label:     FieldToString(field),
		Type:      strings.ReplaceAll(field.FieldType.String(), "*", ""),
		Primary:   field.PrimaryKey,
		Updatable: field.Updatable,
		Creatable: field.Creatable,
	}

	if label := field.Tag.Get("label"); label != "" {
		fieldInfo.Label = label
	}

	for _, validation := range strings.Split(field.Tag.Get("validate"), ",") {
		if validation == "required" {
			fieldInfo.Required = true
		} else if strings.HasPrefix(validation, "max=") {
			if val, err := strconv.Atoi(validation[4:]); err == nil {
				fieldInfo.MaxLength = val
			}
		}
	}
	return fieldInfo
}

func (a *AdminController) relationInfo(rel *schema.Relationship) RelationInfo {
	relationInfo := RelationInfo{
		Field: rel.Field.Name,
		Label: FieldToString(rel.Field),
		Type:  string(rel.Type),
	}

	for _, ref := range rel.References {
		if ref.ForeignKey != nil {
			relationInfo.ForeignKey = ref.ForeignKey.Name
		}
		if ref.PrimaryKey != nil {
			relationInfo.References = ref.PrimaryKey.Name
		}
	}

	for target := range a.registry.All() {
		if target.Schema.ModelType == rel.FieldSchema.ModelType {
			relationInfo.Endpoint = Endpoint(target)
			break
		}
	}

	return relationInfo
}

func FieldToString(field *schema.Field) string {
	return utils.SentenceCase(strings.ReplaceAll(field.Name, "_", " "))
}
