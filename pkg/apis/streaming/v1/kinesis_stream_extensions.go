package v1

import (
	"github.com/crispmark/lifion-kinesis/services/controllers/common"
)

var _ common.StreamWorkerIdentity = (*KinesisStream)(nil)

func (in *KinesisStream) WorkerId() common.WorkerId {
	return common.WorkerId(in.Name)
}
