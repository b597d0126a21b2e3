package wire

import (
	"Myfluence/internal/etl/config"
	"Myfluence/internal/job"
	"Myfluence/internal/service"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	IngestJob *job.IngestJob
}

func BuildApplication(cfg *config.Config, insert bool) (*ApplicationContainer, error) {
	discoveryService := service.NewDiscoveryService()
	transformService := service.NewTransformService()
	pipelineService := service.NewPipelineService(cfg, discoveryService, transformService)

	ingestJob := job.NewIngestJob(cfg, pipelineService, insert)

	return &ApplicationContainer{
		IngestJob: ingestJob,
	}, nil
}
