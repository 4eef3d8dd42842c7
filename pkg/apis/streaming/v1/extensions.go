package v1

import (
	"fmt"
	"strings"

	"github.com/crispmark/lifion-kinesis/services/provisioner"
)

// StateString returns a string representation of the current state
func (in *KinesisStream) StateString() string {
	if in == nil {
		return "(nil)"
	}

	return string(in.Status.Phase)
}

const tagPrefix = "streaming.lifion.dev"

// MetricsTags returns the metrics tags for the KinesisStream
func (in *KinesisStream) MetricsTags() map[string]string {
	stream := "unknown"
	if in.Spec.StreamName != "" {
		stream = strings.ToLower(in.Spec.StreamName)
	}

	kind := "unknown"
	if in.Kind != "" {
		kind = camelCaseToSnakeCase(in.Kind)
	}

	return map[string]string{
		fmt.Sprintf("%s/stream", tagPrefix): stream,
		fmt.Sprintf("%s/kind", tagPrefix):   kind,
		fmt.Sprintf("%s/phase", tagPrefix):  strings.ToLower(string(in.Status.Phase)),
	}
}

// DesiredEncryption translates the encryption section of the spec into the
// desired state applied to the remote stream
func (in *KinesisStream) DesiredEncryption() provisioner.EncryptionSpec {
	if in.Spec.Encryption == nil {
		return provisioner.EncryptionSpec{}
	}
	return provisioner.EncryptionSpec{
		Type:  provisioner.EncryptionType(in.Spec.Encryption.Type),
		KeyID: in.Spec.Encryption.KeyID,
	}
}

// DesiredTags translates the tags section of the spec into the desired tag
// set merged onto the remote stream
func (in *KinesisStream) DesiredTags() provisioner.TagSet {
	if len(in.Spec.Tags) == 0 {
		return nil
	}
	tags := make(provisioner.TagSet, len(in.Spec.Tags))
	for key, value := range in.Spec.Tags {
		tags[key] = value
	}
	return tags
}

func camelCaseToSnakeCase(input string) string {
	var output strings.Builder
	for i, ch := range input {
		if ch >= 'A' && ch <= 'Z' {
			if i > 0 && input[i-1] >= 'a' && input[i-1] <= 'z' {
				output.WriteRune('_')
			}
			output.WriteRune(ch + 32) // Convert to lowercase
		} else {
			output.WriteRune(ch)
		}
	}
	return output.String()
}
