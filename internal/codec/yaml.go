package codec

import (
	"time"

	"gopkg.in/yaml.v3"

	"tasklist/internal/domain"
)

type yamlDocument struct {
	Tasks []yamlTask `yaml:"tasks"`
}

type yamlTask struct {
	Completed     bool   `yaml:"completed"`
	Data          string `yaml:"data"`
	DueDate       string `yaml:"due_date,omitempty"`
	CompletedDate string `yaml:"completed_date,omitempty"`
}

// YAMLCodec stores the task list as a YAML document with RFC3339 timestamps.
type YAMLCodec struct {
	Now func() time.Time
}

// NewYAMLCodec creates a YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{Now: time.Now}
}

// Name returns the codec name.
func (c *YAMLCodec) Name() string {
	return "yaml"
}

// Encode marshals the task list.
func (c *YAMLCodec) Encode(list *domain.TaskList) ([]byte, error) {
	doc := yamlDocument{Tasks: make([]yamlTask, 0, list.Len())}
	for _, task := range list.Tasks() {
		doc.Tasks = append(doc.Tasks, yamlTask{
			Completed:     task.Completed,
			Data:          task.Data,
			DueDate:       formatRFC3339(task.DueDate),
			CompletedDate: formatRFC3339(task.CompletedDate),
		})
	}
	return yaml.Marshal(doc)
}

// Decode unmarshals the task list; invalid YAML yields an empty list and
// bad timestamps are dropped.
func (c *YAMLCodec) Decode(data []byte) *domain.TaskList {
	list := domain.NewTaskList()

	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return list
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	for _, entry := range doc.Tasks {
		task := domain.Task{
			Completed:     entry.Completed,
			Data:          entry.Data,
			DueDate:       parseRFC3339(entry.DueDate),
			CompletedDate: parseRFC3339(entry.CompletedDate),
		}
		Reconcile(&task, now())
		list.Add(task)
	}
	return list
}

func formatRFC3339(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func parseRFC3339(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	utc := t.UTC()
	return &utc
}
