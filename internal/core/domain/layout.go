package domain

// ConfigFileName is the marker file whose presence defines a project root.
const ConfigFileName = "ao.toml"

// Service and interface subdirectories expected inside a project root.
const (
	APIServiceDir   = "api-service"
	ModelServiceDir = "model-service"
	InterfaceDir    = "model-interface"
)

// ProtoFileName is the gRPC contract inside the interface directory.
const ProtoFileName = "anops.proto"

// RequiredDirs lists the subdirectories a valid project must contain,
// in validation order.
var RequiredDirs = []string{
	APIServiceDir,
	ModelServiceDir,
	InterfaceDir,
}

// RequiredFile names a file that must exist inside a project subdirectory.
type RequiredFile struct {
	Dir  string
	Name string
}

// RequiredFiles lists the files a valid project must contain, in validation
// order. The generated gRPC stubs are included: a project checks clean only
// after code generation has run.
var RequiredFiles = []RequiredFile{
	{APIServiceDir, "Dockerfile"},
	{APIServiceDir, "requirements.txt"},
	{APIServiceDir, "anops_pb2.py"},
	{APIServiceDir, "anops_pb2_grpc.py"},
	{ModelServiceDir, "Dockerfile"},
	{ModelServiceDir, "requirements.txt"},
	{ModelServiceDir, "anops_pb2.py"},
	{ModelServiceDir, "anops_pb2_grpc.py"},
	{InterfaceDir, ProtoFileName},
}

// ServiceDirs lists the directories that get a container image during build.
var ServiceDirs = []string{APIServiceDir, ModelServiceDir}

// ImageTag derives the deterministic container tag for a service directory.
func ImageTag(projectName, serviceDir string) string {
	return projectName + "-" + serviceDir + ":latest"
}
