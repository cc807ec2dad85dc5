// Package instance contains instance-related use cases for listing and
// manual status transitions.
package instance

import (
	"context"
	"fmt"

	"github.com/budget-planner/backend/internal/application/adapter"
	"github.com/budget-planner/backend/internal/domain/entity"
	"github.com/budget-planner/backend/internal/domain/valueobject"
)

// ListInstancesInput represents the input for listing a month's instances.
type ListInstancesInput struct {
	Month valueobject.MonthKey
	// Kind filters by expense or income when set.
	Kind *entity.TemplateKind
}

// ListInstancesOutput represents the output of listing instances.
type ListInstancesOutput struct {
	Instances []*entity.Instance
}

// ListInstancesUseCase retrieves the instances of a month, ordered by due day.
type ListInstancesUseCase struct {
	instanceRepo adapter.InstanceRepository
}

// NewListInstancesUseCase creates a new ListInstancesUseCase instance.
func NewListInstancesUseCase(instanceRepo adapter.InstanceRepository) *ListInstancesUseCase {
	return &ListInstancesUseCase{
		instanceRepo: instanceRepo,
	}
}

// Execute performs the listing.
func (uc *ListInstancesUseCase) Execute(ctx context.Context, input ListInstancesInput) (*ListInstancesOutput, error) {
	var (
		instances []*entity.Instance
		err       error
	)

	if input.Kind != nil {
		instances, err = uc.instanceRepo.FindByMonthAndKind(ctx, input.Month, *input.Kind)
	} else {
		instances, err = uc.instanceRepo.FindByMonth(ctx, input.Month)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list instances: %w", err)
	}

	return &ListInstancesOutput{Instances: instances}, nil
}
