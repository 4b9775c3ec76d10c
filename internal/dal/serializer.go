package dal

// Serializer maps one entity type to and from its row representation.
// Serialize must omit the id key while the entity is unpersisted (id 0)
// and omit created_at while zero so storage assigns its defaults.
type Serializer[E any] interface {
	Serialize(e E) DTO
	Deserialize(row DTO) (E, error)
}

// SerializeAll is the flat (batch) variant of Serialize.
func SerializeAll[E any](s Serializer[E], entities []E) []DTO {
	rows := make([]DTO, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, s.Serialize(e))
	}
	return rows
}

// DeserializeAll is the flat (batch) variant of Deserialize.
func DeserializeAll[E any](s Serializer[E], rows []DTO) ([]E, error) {
	entities := make([]E, 0, len(rows))
	for _, row := range rows {
		e, err := s.Deserialize(row)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}
