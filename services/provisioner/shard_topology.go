package provisioner

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"
)

// ShardTopologyBuilder assembles the shard listing of a stream into a
// closed-world lineage forest keyed by shard id.
type ShardTopologyBuilder struct {
	gateway Gateway
}

// NewShardTopologyBuilder creates a new ShardTopologyBuilder instance.
func NewShardTopologyBuilder(gateway Gateway) *ShardTopologyBuilder {
	return &ShardTopologyBuilder{gateway: gateway}
}

// GetStreamShards returns every shard of the stream with its parent reference
// normalized: a parent that is not itself present in the listing is cleared,
// promoting the shard to a lineage root. In the returned map a non-empty
// Parent is always a valid key.
func (b *ShardTopologyBuilder) GetStreamShards(ctx context.Context, streamName string) (map[string]Shard, error) {
	logger := klog.FromContext(ctx).
		WithName("ShardTopologyBuilder").
		WithValues("stream", streamName)

	records, err := b.gateway.ListShards(ctx, streamName)
	if err != nil {
		return nil, fmt.Errorf("failed to list shards of stream %s: %w", streamName, err)
	}

	shards := make(map[string]Shard, len(records))
	for _, record := range records {
		shards[record.ID] = Shard{
			ID:                     record.ID,
			Parent:                 record.ParentID,
			StartingSequenceNumber: record.StartingSequenceNumber,
		}
	}

	// parents expire off the retention window while their children keep
	// referencing them; those children become roots
	for id, shard := range shards {
		if shard.Parent == "" {
			continue
		}
		if _, ok := shards[shard.Parent]; !ok {
			shard.Parent = ""
			shards[id] = shard
		}
	}

	if err := validateLineage(shards); err != nil {
		return nil, fmt.Errorf("stream %s: %w", streamName, err)
	}

	logger.V(2).Info("assembled shard topology", "shards", len(shards))
	return shards, nil
}

// validateLineage walks every parent chain and fails when one loops back on
// itself instead of terminating at a root.
func validateLineage(shards map[string]Shard) error {
	const (
		unvisited = iota
		visiting
		settled
	)

	state := make(map[string]int, len(shards))
	for id := range shards {
		chain := make([]string, 0, 4)
		current := id
		for current != "" && state[current] == unvisited {
			state[current] = visiting
			chain = append(chain, current)
			current = shards[current].Parent
		}
		if current != "" && state[current] == visiting {
			return fmt.Errorf("shard %s: %w", current, ErrShardLineageCycle)
		}
		for _, visited := range chain {
			state[visited] = settled
		}
	}
	return nil
}
