package scaffold

// Fixed-content templates written during project initialization.

const configTemplate = `[project]
name = %q

# Example [check] configuration (optional)
# [check]
# linters = ["ruff check ."]
# testers = ["pytest"]

# Example [tasks] configuration (optional)
# [tasks]
# build = ["echo Building..."]
`

const gitignoreTemplate = `# Python
__pycache__/
*.pyc
*.pyo
*.pyd
.Python
env/
venv/
ENV/
.coverage
.coverage.*
.cache
coverage.xml
*.log
.hypothesis/
.pytest_cache/

# Docker
docker-compose.override.yml

# Generated gRPC stubs
/api-service/anops_pb2*.py*
/model-service/anops_pb2*.py*
`

const apiDockerfileTemplate = `FROM python:3.11-slim

WORKDIR /app

COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt

COPY . .

EXPOSE 8000

CMD ["uvicorn", "main:app", "--host", "0.0.0.0", "--port", "8000"]
`

const modelDockerfileTemplate = `FROM python:3.11-slim

WORKDIR /app

COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt

COPY . .

EXPOSE 50051

CMD ["python", "server.py"]
`

const apiRequirementsTemplate = `fastapi
uvicorn
grpcio
grpcio-tools
pytest
httpx
`

const modelRequirementsTemplate = `grpcio
grpcio-tools
pytest
`

const protoTemplate = `syntax = "proto3";

package anops;

// The AnOps service definition.
service AnOps {
  // Sends input data for prediction.
  rpc Predict (PredictRequest) returns (PredictResponse) {}
}

// The request message containing the input data.
message PredictRequest {
  string input_data = 1;
}

// The response message containing the prediction result.
message PredictResponse {
  string output_data = 1;
}
`

const apiMainTemplate = `"""API service entry point.

Receives HTTP requests and forwards them to the model service over gRPC.
"""

from fastapi import FastAPI

app = FastAPI()


@app.get("/health")
def health():
    return {"status": "ok"}
`

const modelServerTemplate = `"""Model service entry point.

Hosts the model and serves the gRPC interface defined in model-interface.
"""


def main():
    raise NotImplementedError("implement the AnOps gRPC server here")


if __name__ == "__main__":
    main()
`

const apiReadmeTemplate = `# API Service

RESTful entry point. Receives HTTP requests and communicates with the
model service via gRPC.

Technology: Python/FastAPI (default)
`

const modelReadmeTemplate = `# Model Service

Hosts the model code and implements the gRPC server defined in
model-interface.

Technology: Python (default)
`

const interfaceReadmeTemplate = `# Model Interface (gRPC)

Protocol Buffer definitions for the gRPC interface between the API service
and the model service. See anops.proto.
`
