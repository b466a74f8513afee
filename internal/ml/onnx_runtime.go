package ml

import (
	"os"

	onnxruntime "github.com/yalue/onnxruntime_go"

	"fintrack/pkg/errors"
)

// ONNXModel wraps an ONNX Runtime session for classifier inference
type ONNXModel struct {
	session    *onnxruntime.DynamicAdvancedSession
	path       string
	numClasses int
}

// LoadONNXModel loads a classifier exported to ONNX from file.
// numClasses must match the label set the model was trained on.
// Input: "input" (feature vector, shape [1, n])
// Outputs: "output" (predicted class index), "probabilities" (class probabilities)
func LoadONNXModel(modelPath string, numClasses int) (*ONNXModel, error) {
	if _, err := os.Stat(modelPath); err != nil {
		return nil, &errors.ModelLoadError{Path: modelPath, Err: err}
	}

	// Initialize ONNX runtime environment (safe to call more than once)
	if err := onnxruntime.InitializeEnvironment(); err != nil {
		return nil, &errors.ModelLoadError{Path: modelPath, Err: errors.Wrap(err, "initialize ONNX runtime")}
	}

	options, err := onnxruntime.NewSessionOptions()
	if err != nil {
		return nil, &errors.ModelLoadError{Path: modelPath, Err: errors.Wrap(err, "create session options")}
	}
	defer options.Destroy()

	session, err := onnxruntime.NewDynamicAdvancedSession(modelPath,
		[]string{"input"}, []string{"output", "probabilities"}, options)
	if err != nil {
		return nil, &errors.ModelLoadError{Path: modelPath, Err: errors.Wrap(err, "load ONNX model")}
	}

	return &ONNXModel{
		session:    session,
		path:       modelPath,
		numClasses: numClasses,
	}, nil
}

// Predict runs inference on the model with the given feature vector.
// Returns the predicted class index and the probability distribution over
// all classes. Pure with respect to the loaded weights: the same input
// always yields the same output.
func (m *ONNXModel) Predict(features []float64) (int, []float64, error) {
	if m.session == nil {
		return 0, nil, errors.New("model session is nil")
	}
	if len(features) == 0 {
		return 0, nil, errors.New("empty feature vector")
	}

	// Input tensor: shape [1, num_features]
	inputShape := onnxruntime.NewShape(1, int64(len(features)))
	inputTensor, err := onnxruntime.NewTensor(inputShape, features)
	if err != nil {
		return 0, nil, errors.Wrap(err, "create input tensor")
	}
	defer inputTensor.Destroy()

	// Output 1: predicted class index (int64, shape [1])
	classOutput := make([]int64, 1)
	classTensor, err := onnxruntime.NewTensor(onnxruntime.NewShape(1), classOutput)
	if err != nil {
		return 0, nil, errors.Wrap(err, "create class output tensor")
	}
	defer classTensor.Destroy()

	// Output 2: probabilities (float64, shape [1, num_classes])
	probOutput := make([]float64, m.numClasses)
	probShape := onnxruntime.NewShape(1, int64(m.numClasses))
	probTensor, err := onnxruntime.NewTensor(probShape, probOutput)
	if err != nil {
		return 0, nil, errors.Wrap(err, "create probabilities output tensor")
	}
	defer probTensor.Destroy()

	inputs := []onnxruntime.Value{inputTensor}
	outputs := []onnxruntime.Value{classTensor, probTensor}
	if err := m.session.Run(inputs, outputs); err != nil {
		return 0, nil, errors.Wrap(err, "inference failed")
	}

	predicted := int(classOutput[0])
	if predicted < 0 || predicted >= m.numClasses {
		return 0, nil, errors.Newf("predicted class index %d out of range [0, %d)", predicted, m.numClasses)
	}

	probabilities := append([]float64(nil), probOutput...)
	return predicted, probabilities, nil
}

// Path returns the artifact path the model was loaded from
func (m *ONNXModel) Path() string {
	return m.path
}

// Destroy cleans up the ONNX session
func (m *ONNXModel) Destroy() {
	if m.session != nil {
		m.session.Destroy()
		m.session = nil
	}
}
