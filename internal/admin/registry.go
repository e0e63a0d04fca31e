// Package admin содержит явный реестр списочных представлений сущностей:
// какие поля участвуют в поиске, фильтрации и сортировке и какие
// дочерние строки редактируются вместе с родителем.
package admin

// EntitySpec описывает списочное представление одной сущности
type EntitySpec struct {
	Name string
	// Table — основная таблица запроса
	Table string
	// Joins — LEFT JOIN для поиска и фильтрации по связанным таблицам
	Joins []string
	// SearchFields — SQL-выражения строковых полей, по которым идет
	// регистронезависимый поиск подстроки
	SearchFields []string
	// FilterFields — имя фильтра → SQL-выражение точного совпадения
	FilterFields map[string]string
	// BoolFilterFields — фильтры, значение которых приводится к bool
	// перед подстановкой; строковое 'true' не совпало бы с числовым
	// представлением булевой колонки
	BoolFilterFields map[string]bool
	// SortFields — имя сортировки → SQL-выражение, включая агрегатные колонки
	SortFields map[string]string
	// DefaultOrder применяется, когда сортировка не запрошена
	DefaultOrder string
	// Inlines — дочерние сущности, редактируемые вместе с родителем
	Inlines []string
}

// Registry связывает имя сущности с её спецификацией
type Registry map[string]EntitySpec

// BuildRegistry строит реестр представлений один раз при старте процесса
func BuildRegistry() Registry {
	return Registry{
		"user": {
			Name:         "user",
			Table:        "users",
			SearchFields: []string{"users.full_name", "users.email"},
			FilterFields: map[string]string{
				"role": "users.role",
			},
			SortFields: map[string]string{
				"username":  "users.username",
				"full_name": "users.full_name",
				"role":      "users.role",
				"email":     "users.email",
			},
			DefaultOrder: "users.created_at",
		},
		"school": {
			Name:         "school",
			Table:        "schools",
			SearchFields: []string{"schools.name", "schools.city", "schools.region", "schools.address"},
			FilterFields: map[string]string{
				"city":   "schools.city",
				"region": "schools.region",
			},
			SortFields: map[string]string{
				"name":          "schools.name",
				"city":          "schools.city",
				"region":        "schools.region",
				"teacher_count": "teacher_count",
				"student_count": "student_count",
			},
			DefaultOrder: "schools.name",
		},
		"course": {
			Name:         "course",
			Table:        "courses",
			SearchFields: []string{"courses.title", "courses.description"},
			FilterFields: map[string]string{
				"grade":      "courses.grade",
				"created_by": "courses.created_by_id",
			},
			SortFields: map[string]string{
				"title":        "courses.title",
				"grade":        "courses.grade",
				"created_at":   "courses.created_at",
				"lesson_count": "lesson_count",
			},
			DefaultOrder: "courses.created_at",
			Inlines:      []string{"lesson"},
		},
		"lesson": {
			Name:         "lesson",
			Table:        "lessons",
			Joins:        []string{"LEFT JOIN courses ON courses.id = lessons.course_id"},
			SearchFields: []string{"lessons.title", "lessons.content"},
			FilterFields: map[string]string{
				"course":       "lessons.course_id",
				"course_grade": "courses.grade",
			},
			SortFields: map[string]string{
				"title":            "lessons.title",
				"order":            "lessons.sort_order",
				"assignment_count": "assignment_count",
			},
			DefaultOrder: "lessons.course_id, lessons.sort_order, lessons.created_at",
			Inlines:      []string{"assignment"},
		},
		"assignment": {
			Name:         "assignment",
			Table:        "assignments",
			Joins:        []string{"LEFT JOIN lessons ON lessons.id = assignments.lesson_id"},
			SearchFields: []string{"assignments.title", "assignments.description"},
			FilterFields: map[string]string{
				"assignment_type": "assignments.assignment_type",
				"ai_autocheck":    "assignments.ai_autocheck",
				"lesson":          "assignments.lesson_id",
				"course":          "lessons.course_id",
			},
			BoolFilterFields: map[string]bool{
				"ai_autocheck": true,
			},
			SortFields: map[string]string{
				"title":            "assignments.title",
				"max_score":        "assignments.max_score",
				"submission_count": "submission_count",
				"avg_score":        "avg_score",
			},
			DefaultOrder: "assignments.created_at",
		},
		"submission": {
			Name:  "submission",
			Table: "submissions",
			Joins: []string{
				"LEFT JOIN users ON users.id = submissions.student_id",
				"LEFT JOIN assignments ON assignments.id = submissions.assignment_id",
			},
			SearchFields: []string{"users.username", "users.full_name", "assignments.title"},
			FilterFields: map[string]string{
				"status":          "submissions.status",
				"checked_by_ai":   "submissions.checked_by_ai",
				"assignment_type": "assignments.assignment_type",
				"assignment":      "submissions.assignment_id",
				"student":         "submissions.student_id",
			},
			BoolFilterFields: map[string]bool{
				"checked_by_ai": true,
			},
			SortFields: map[string]string{
				"status":     "submissions.status",
				"score":      "submissions.score",
				"created_at": "submissions.created_at",
			},
			DefaultOrder: "submissions.created_at",
		},
		"recommendation": {
			Name:         "recommendation",
			Table:        "recommendations",
			Joins:        []string{"LEFT JOIN users ON users.id = recommendations.student_id"},
			SearchFields: []string{"users.username", "users.full_name", "recommendations.text"},
			FilterFields: map[string]string{
				"source":  "recommendations.source",
				"student": "recommendations.student_id",
			},
			SortFields: map[string]string{
				"generated_at": "recommendations.generated_at",
				"source":       "recommendations.source",
			},
			DefaultOrder: "recommendations.generated_at",
		},
		"class_group": {
			Name:         "class_group",
			Table:        "class_groups",
			Joins:        []string{"LEFT JOIN users ON users.id = class_groups.teacher_id"},
			SearchFields: []string{"class_groups.name", "users.username", "users.full_name"},
			FilterFields: map[string]string{
				"teacher": "class_groups.teacher_id",
			},
			SortFields: map[string]string{
				"name":          "class_groups.name",
				"student_count": "student_count",
			},
			DefaultOrder: "class_groups.name",
			Inlines:      []string{"class_student"},
		},
		"class_student": {
			Name:  "class_student",
			Table: "class_students",
			Joins: []string{
				"LEFT JOIN users ON users.id = class_students.student_id",
				"LEFT JOIN class_groups ON class_groups.id = class_students.class_group_id",
			},
			SearchFields: []string{"users.username", "users.full_name", "class_groups.name"},
			FilterFields: map[string]string{
				"class_group": "class_students.class_group_id",
				"student":     "class_students.student_id",
			},
			SortFields: map[string]string{
				"class_group": "class_students.class_group_id",
			},
			DefaultOrder: "class_groups.name, users.username",
		},
	}
}
