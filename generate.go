package main

//go:generate mockgen -destination=./tests/mocks/gateway.go -package=mocks github.com/crispmark/lifion-kinesis/services/provisioner Gateway
//go:generate mockgen -destination=./tests/mocks/stream_provisioner.go -package=mocks github.com/crispmark/lifion-kinesis/services/controllers StreamReconciler,ShardTopologyBuilder,EnhancedConsumerManager
//go:generate mockgen -destination=./tests/mocks/lifetime_service.go -package=mocks github.com/crispmark/lifion-kinesis/services/controllers/kinesis_stream LifetimeService,StreamMetricsReporter
