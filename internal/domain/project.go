package domain

// ProjectStatus is the open/closed state reported by the controller
type ProjectStatus string

const (
	ProjectStatusOpened ProjectStatus = "opened"
	ProjectStatusClosed ProjectStatus = "closed"
)

// Project represents a GNS3 project (a lab topology container)
type Project struct {
	ProjectID string        `json:"project_id" yaml:"project_id"`
	Name      string        `json:"name" yaml:"name"`
	Status    ProjectStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

// FindProjectByName returns every project whose name matches exactly, in
// controller order
func FindProjectByName(projects []Project, name string) []Project {
	var matches []Project
	for _, p := range projects {
		if p.Name == name {
			matches = append(matches, p)
		}
	}
	return matches
}

// FindProjectByID returns the project with the given identifier
func FindProjectByID(projects []Project, id string) (Project, bool) {
	for _, p := range projects {
		if p.ProjectID == id {
			return p, true
		}
	}
	return Project{}, false
}
