package scaffold

import (
	"go.anops.dev/ao/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const composeNetwork = "anops-net"

// composeFile models the docker-compose document written during init.
type composeFile struct {
	Version  string                    `yaml:"version"`
	Services map[string]composeService `yaml:"services"`
	Networks map[string]networkSpec    `yaml:"networks"`
}

type composeService struct {
	Build       string            `yaml:"build"`
	Ports       []string          `yaml:"ports,omitempty"`
	Environment map[string]string `yaml:"environment,omitempty"`
	DependsOn   []string          `yaml:"depends_on,omitempty"`
	Networks    []string          `yaml:"networks"`
}

type networkSpec struct {
	Driver string `yaml:"driver"`
}

// renderCompose marshals the two-service compose document.
func renderCompose() ([]byte, error) {
	doc := composeFile{
		Version: "3.8",
		Services: map[string]composeService{
			domain.APIServiceDir: {
				Build: "./" + domain.APIServiceDir,
				Ports: []string{"8000:8000"},
				Environment: map[string]string{
					"MODEL_SERVICE_URL": domain.ModelServiceDir + ":50051",
				},
				DependsOn: []string{domain.ModelServiceDir},
				Networks:  []string{composeNetwork},
			},
			domain.ModelServiceDir: {
				Build:    "./" + domain.ModelServiceDir,
				Ports:    []string{"50051:50051"},
				Networks: []string{composeNetwork},
			},
		},
		Networks: map[string]networkSpec{
			composeNetwork: {Driver: "bridge"},
		},
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to render compose file")
	}
	return data, nil
}
