package classifier

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// DetectLabelsAPI is the part of the Rekognition client we call.
type DetectLabelsAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

// Rekognition classifies images with AWS Rekognition DetectLabels and keeps
// the single most confident label.
type Rekognition struct {
	client        DetectLabelsAPI
	inputSize     int
	maxLabels     int32
	minConfidence float32
}

func NewRekognition(client DetectLabelsAPI, inputSize int) *Rekognition {
	return &Rekognition{
		client:        client,
		inputSize:     inputSize,
		maxLabels:     5,
		minConfidence: 50,
	}
}

func (r *Rekognition) Classify(ctx context.Context, data []byte) (*Result, error) {
	img, err := Preprocess(data, r.inputSize)
	if err != nil {
		return nil, err
	}
	body, err := encodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("%w: encode input: %v", ErrPrediction, err)
	}

	out, err := r.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: body},
		MaxLabels:     aws.Int32(r.maxLabels),
		MinConfidence: aws.Float32(r.minConfidence),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrediction, err)
	}

	var best *types.Label
	for i := range out.Labels {
		l := &out.Labels[i]
		if l.Name == nil {
			continue
		}
		if best == nil || aws.ToFloat32(l.Confidence) > aws.ToFloat32(best.Confidence) {
			best = l
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: no labels detected", ErrPrediction)
	}
	return &Result{
		Label:      aws.ToString(best.Name),
		Confidence: roundConfidence(float64(aws.ToFloat32(best.Confidence))),
	}, nil
}
