package kinesis_stream

import (
	"context"
	"fmt"
	"sort"

	"github.com/crispmark/lifion-kinesis/configuration/conf"
	v1 "github.com/crispmark/lifion-kinesis/pkg/apis/streaming/v1"
	"github.com/crispmark/lifion-kinesis/services/controllers"
	"github.com/crispmark/lifion-kinesis/services/provisioner"
	"golang.org/x/time/rate"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/util/workqueue"
	"k8s.io/klog/v2"
	runtime "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"
)

// PhaseMetricName is the periodic metric published for every managed stream resource.
const PhaseMetricName = "kinesis.stream.phase"

var _ reconcile.Reconciler = (*KinesisStreamReconciler)(nil)

// KinesisStreamReconciler reconciles KinesisStream resources by driving the
// remote stream towards the declared state through the provisioning services.
type KinesisStreamReconciler struct {
	client          client.Client
	streams         controllers.StreamReconciler
	topology        controllers.ShardTopologyBuilder
	consumers       controllers.EnhancedConsumerManager
	lifetimeService LifetimeService
	metricsReporter StreamMetricsReporter
	configuration   conf.KinesisStreamOperatorConfiguration
}

// NewKinesisStreamReconciler creates a new KinesisStreamReconciler instance.
func NewKinesisStreamReconciler(
	client client.Client,
	streams controllers.StreamReconciler,
	topology controllers.ShardTopologyBuilder,
	consumers controllers.EnhancedConsumerManager,
	lifetimeService LifetimeService,
	metricsReporter StreamMetricsReporter,
	configuration conf.KinesisStreamOperatorConfiguration,
) *KinesisStreamReconciler {
	return &KinesisStreamReconciler{
		client:          client,
		streams:         streams,
		topology:        topology,
		consumers:       consumers,
		lifetimeService: lifetimeService,
		metricsReporter: metricsReporter,
		configuration:   configuration,
	}
}

// Reconcile implements the reconciliation loop for KinesisStream resources.
func (s *KinesisStreamReconciler) Reconcile(ctx context.Context, request reconcile.Request) (reconcile.Result, error) {
	logger := s.getLogger(ctx, request.NamespacedName)
	logger.V(2).Info("reconciling KinesisStream resource")

	stream := &v1.KinesisStream{}
	err := s.client.Get(ctx, request.NamespacedName, stream)
	if apierrors.IsNotFound(err) {
		logger.V(1).Info("KinesisStream resource not found, might have been deleted")
		s.metricsReporter.RemoveStream(request.Name)
		return reconcile.Result{}, nil
	}
	if err != nil {
		logger.V(0).Error(err, "unable to fetch KinesisStream resource")
		return reconcile.Result{}, err
	}

	return s.moveFsm(ctx, stream)
}

// SetupWithManager sets up the controller with the Manager.
func (s *KinesisStreamReconciler) SetupWithManager(mgr runtime.Manager) error {
	rlc := s.configuration.RateLimiting
	rateLimiter := workqueue.NewTypedMaxOfRateLimiter(
		workqueue.NewTypedItemExponentialFailureRateLimiter[reconcile.Request](rlc.FailureRateBaseDelay, rlc.FailureRateMaxDelay),
		&workqueue.TypedBucketRateLimiter[reconcile.Request]{
			Limiter: rate.NewLimiter(rlc.RateLimitElementsPerSecond, rlc.RateLimitElementsBurst),
		},
	)

	return runtime.NewControllerManagedBy(mgr).
		For(&v1.KinesisStream{}).
		WithOptions(controller.Options{
			MaxConcurrentReconciles: s.configuration.MaxConcurrentReconciles,
			RateLimiter:             rateLimiter,
		}).
		Complete(s)
}

func (s *KinesisStreamReconciler) moveFsm(ctx context.Context, stream *v1.KinesisStream) (reconcile.Result, error) {
	switch stream.Status.Phase {
	case "":
		return s.updatePhase(ctx, stream, v1.PhaseProvisioning, nil)

	case v1.PhaseProvisioning, v1.PhaseReady, v1.PhaseAbsent, v1.PhaseFailed:
		return s.provision(ctx, stream)
	}

	return reconcile.Result{}, fmt.Errorf("failed to reconcile KinesisStream FSM for %s. Current state: %s",
		stream.Name,
		stream.StateString(),
	)
}

// provision runs the full provisioning sequence against the remote stream:
// existence, tags, encryption, shard topology, enhanced fan-out consumers.
func (s *KinesisStreamReconciler) provision(ctx context.Context, stream *v1.KinesisStream) (reconcile.Result, error) {
	logger := s.getLogger(ctx, types.NamespacedName{Name: stream.Name})

	descriptor, err := s.streams.EnsureStreamExists(ctx, stream.Spec.StreamName, stream.Spec.ShardCount, stream.Spec.CreateIfMissing)
	if err != nil {
		return s.markFailed(ctx, stream, err)
	}

	if !descriptor.Exists() {
		logger.V(1).Info("stream does not exist and creation is disabled")
		stream.Status.StreamARN = ""
		stream.Status.CreatedAt = nil
		return s.updatePhase(ctx, stream, v1.PhaseAbsent, nil)
	}

	if err := s.confirmTags(ctx, stream); err != nil {
		return s.markFailed(ctx, stream, err)
	}

	if stream.Spec.Encryption != nil {
		if err := s.streams.EnsureStreamEncryption(ctx, stream.Spec.StreamName, stream.DesiredEncryption()); err != nil {
			return s.markFailed(ctx, stream, err)
		}
	}

	shards, err := s.topology.GetStreamShards(ctx, stream.Spec.StreamName)
	if err != nil {
		return s.markFailed(ctx, stream, err)
	}

	consumers, err := s.ensureConsumers(ctx, stream, descriptor.ARN)
	if err != nil {
		return s.markFailed(ctx, stream, err)
	}

	stream.Status.StreamARN = descriptor.ARN
	stream.Status.CreatedAt = &metav1.Time{Time: descriptor.CreatedOn}
	stream.Status.Shards = int32(len(shards))
	stream.Status.Consumers = consumers
	return s.updatePhase(ctx, stream, v1.PhaseReady, nil)
}

func (s *KinesisStreamReconciler) confirmTags(ctx context.Context, stream *v1.KinesisStream) error {
	configurator, err := NewStreamTagsService(s.configuration.StaticTags, stream).TagConfigurator()
	if err != nil {
		return err
	}

	desired := provisioner.TagSet{}
	if err := configurator.ConfigureTags(desired); err != nil {
		return err
	}

	return s.streams.ConfirmStreamTags(ctx, stream.Spec.StreamName, desired)
}

// ensureConsumers registers every consumer declared on the resource that is
// not yet listed on the stream and returns the converged consumer statuses.
func (s *KinesisStreamReconciler) ensureConsumers(ctx context.Context, stream *v1.KinesisStream, streamARN string) ([]v1.StreamConsumerStatus, error) {
	if len(stream.Spec.Consumers) == 0 {
		return nil, nil
	}

	registry, err := s.consumers.GetEnhancedConsumers(ctx, streamARN)
	if err != nil {
		return nil, err
	}

	registered := false
	for _, name := range stream.Spec.Consumers {
		if _, ok := registry[name]; ok {
			continue
		}
		if err := s.consumers.RegisterStreamConsumer(ctx, streamARN, name); err != nil {
			return nil, err
		}
		registered = true
	}

	if registered {
		registry, err = s.consumers.GetEnhancedConsumers(ctx, streamARN)
		if err != nil {
			return nil, err
		}
	}

	statuses := make([]v1.StreamConsumerStatus, 0, len(registry))
	for _, consumer := range registry {
		statuses = append(statuses, v1.StreamConsumerStatus{
			Name:   consumer.Name,
			ARN:    consumer.ARN,
			Status: string(consumer.Status),
		})
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses, nil
}

func (s *KinesisStreamReconciler) markFailed(ctx context.Context, stream *v1.KinesisStream, provisioningErr error) (reconcile.Result, error) {
	logger := s.getLogger(ctx, types.NamespacedName{Name: stream.Name})
	logger.V(0).Error(provisioningErr, "failed to provision stream", "stream", stream.Spec.StreamName)

	if _, err := s.updatePhase(ctx, stream, v1.PhaseFailed, provisioningErr); err != nil {
		return reconcile.Result{}, err
	}

	// returned to the workqueue for a rate limited retry
	return reconcile.Result{}, provisioningErr
}

func (s *KinesisStreamReconciler) updatePhase(ctx context.Context, stream *v1.KinesisStream, nextPhase v1.Phase, provisioningErr error) (reconcile.Result, error) {
	logger := s.getLogger(ctx, types.NamespacedName{Name: stream.Name})

	if stream.Status.Phase != nextPhase {
		logger.V(1).Info("updating KinesisStream phase", "from", stream.Status.Phase, "to", nextPhase)
	}
	stream.Status.Phase = nextPhase
	stream.Status.Conditions = s.lifetimeService.ComputeConditions(stream, provisioningErr)

	err := s.client.Status().Update(ctx, stream)
	if err != nil {
		logger.V(1).Error(err, "unable to update KinesisStream status")
		return reconcile.Result{}, err
	}

	s.lifetimeService.RecordLifetimeEvent(stream, provisioningErr)
	s.metricsReporter.AddStream(stream.Name, PhaseMetricName, stream.MetricsTags())

	switch nextPhase {
	case v1.PhaseProvisioning:
		return reconcile.Result{Requeue: true}, nil
	case v1.PhaseReady, v1.PhaseAbsent:
		return reconcile.Result{RequeueAfter: s.configuration.SyncInterval}, nil
	}
	return reconcile.Result{}, nil
}

func (s *KinesisStreamReconciler) getLogger(ctx context.Context, request types.NamespacedName) klog.Logger {
	return klog.FromContext(ctx).
		WithName("KinesisStreamReconciler").
		WithValues("name", request.Name)
}
