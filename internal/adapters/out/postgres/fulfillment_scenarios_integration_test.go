package postgres_test

import (
	"context"
	"sync"

	"fulfillment/internal/adapters/out/postgres/workerrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW { return f() }

type invoiceUoWFactoryFunc func() commands.InvoiceUoW

func (f invoiceUoWFactoryFunc) Create() commands.InvoiceUoW { return f() }

// pipeline wires the command handlers to the real unit of work.
type pipeline struct {
	importer commands.ImportInvoiceCommandHandler
	starter  commands.StartStageCommandHandler
	closer   commands.CompleteStageCommandHandler
	returner commands.ReturnToBillingCommandHandler
}

var billingActor = access.Actor{Name: "Billing Desk", Role: access.RoleBilling}

func (suite *UnitOfWorkIntegrationTestSuite) newPipeline() pipeline {
	ctx := context.Background()
	workers := workerrepo.NewGormWorkerDirectory(suite.db)
	for _, w := range []struct {
		email string
		role  access.Role
	}{
		{"alice@x.com", access.RolePicker},
		{"bob@x.com", access.RolePicker},
		{"carol@x.com", access.RolePacker},
		{"dave@x.com", access.RoleDriver},
	} {
		suite.Require().NoError(workers.Register(ctx, ports.WorkerAccount{
			ID:    kernel.NewUUID(),
			Email: mustEmail(suite.T(), w.email),
			Name:  w.email,
			Role:  w.role,
		}, true))
	}

	uows := uowFactoryFunc(func() commands.UoW { return suite.factory.Create() })
	invoiceUoWs := invoiceUoWFactoryFunc(func() commands.InvoiceUoW { return suite.factory.Create() })
	return pipeline{
		importer: commands.NewImportInvoiceCommandHandler(invoiceUoWs),
		starter:  commands.NewStartStageCommandHandler(uows, workers),
		closer:   commands.NewCompleteStageCommandHandler(uows, workers),
		returner: commands.NewReturnToBillingCommandHandler(uows),
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) importLTPI1(p pipeline) {
	cmd, err := commands.NewImportInvoiceCommand(billingActor, kernel.NewUUID(), commands.ImportInvoiceInput{
		InvoiceNo: "LTPI-1",
		Priority:  "MEDIUM",
		Customer:  commands.CustomerInput{Code: "C-1", Name: "City Pharmacy"},
		Items: []commands.ItemInput{
			{ItemCode: "PARA500", Name: "Paracetamol", Quantity: 20, MRP: "3.50"},
			{ItemCode: "AMOX250", Name: "Amoxicillin", Quantity: 10, MRP: "85.00"},
		},
	})
	suite.Require().NoError(err)

	result, err := p.importer.Handle(context.Background(), cmd)
	suite.Require().NoError(err)
	suite.Equal("920.00", result.TotalAmount.String())
}

func (suite *UnitOfWorkIntegrationTestSuite) startPicking(p pipeline, email string) error {
	cmd, err := commands.NewStartPickingCommand(billingActor, kernel.NewUUID(), "LTPI-1", email, "")
	suite.Require().NoError(err)
	_, err = p.starter.Handle(context.Background(), cmd)
	return err
}

func (suite *UnitOfWorkIntegrationTestSuite) storedInvoice() *invoice.Invoice {
	inv, err := suite.factory.Create().InvoiceRepository().GetByNo(context.Background(), "LTPI-1")
	suite.Require().NoError(err)
	return inv
}

func (suite *UnitOfWorkIntegrationTestSuite) requireConflict(err error, code string) {
	var conflict *errs.StateConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal(code, conflict.Code)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestScenario_ImportPickPackDeliver() {
	ctx := context.Background()
	p := suite.newPipeline()
	suite.importLTPI1(p)
	suite.Equal(invoice.StatusPending, suite.storedInvoice().Status())

	suite.Require().NoError(suite.startPicking(p, "alice@x.com"))
	suite.Equal(invoice.StatusPicking, suite.storedInvoice().Status())
	suite.requireConflict(suite.startPicking(p, "bob@x.com"), "session_active")

	wrong, err := commands.NewCompletePickingCommand(billingActor, "LTPI-1", "bob@x.com", "")
	suite.Require().NoError(err)
	_, err = p.closer.Handle(ctx, wrong)
	suite.requireConflict(err, "worker_mismatch")
	suite.Equal(invoice.StatusPicking, suite.storedInvoice().Status())

	done, err := commands.NewCompletePickingCommand(billingActor, "LTPI-1", "alice@x.com", "all found")
	suite.Require().NoError(err)
	result, err := p.closer.Handle(ctx, done)
	suite.Require().NoError(err)
	suite.Equal(invoice.StatusPicked, result.InvoiceStatus)
	suite.Equal(session.StatusPicked, result.SessionStatus)

	startPacking, err := commands.NewStartPackingCommand(billingActor, kernel.NewUUID(), "LTPI-1", "carol@x.com", "")
	suite.Require().NoError(err)
	_, err = p.starter.Handle(ctx, startPacking)
	suite.Require().NoError(err)

	donePacking, err := commands.NewCompletePackingCommand(billingActor, "LTPI-1", "carol@x.com", "")
	suite.Require().NoError(err)
	_, err = p.closer.Handle(ctx, donePacking)
	suite.Require().NoError(err)

	startDelivery, err := commands.NewStartDeliveryCommand(billingActor, kernel.NewUUID(),
		"LTPI-1", "dave@x.com", "DIRECT", "", "", "")
	suite.Require().NoError(err)
	dispatched, err := p.starter.Handle(ctx, startDelivery)
	suite.Require().NoError(err)
	suite.Equal(invoice.StatusDispatched, dispatched.InvoiceStatus)

	delivered, err := commands.NewCompleteDeliveryCommand(billingActor, "LTPI-1", "dave@x.com", "DELIVERED", "")
	suite.Require().NoError(err)
	_, err = p.closer.Handle(ctx, delivered)
	suite.Require().NoError(err)
	suite.Equal(invoice.StatusDelivered, suite.storedInvoice().Status())

	var types []invoice.EventType
	for _, e := range suite.publisher.Events() {
		types = append(types, e.Type)
	}
	suite.Equal(invoice.EventInvoiceCreated, types[0])
	suite.Len(types, 7, "one creation plus six status changes")

	back, err := commands.NewReturnToBillingCommand(billingActor, kernel.NewUUID(), "LTPI-1", "late", "")
	suite.Require().NoError(err)
	_, err = p.returner.Handle(ctx, back)
	suite.requireConflict(err, "invalid_status")
	suite.Contains(err.Error(), "DELIVERED")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestScenario_ReturnDuringPackingCancelsSession() {
	ctx := context.Background()
	p := suite.newPipeline()
	suite.importLTPI1(p)
	suite.Require().NoError(suite.startPicking(p, "alice@x.com"))

	done, err := commands.NewCompletePickingCommand(billingActor, "LTPI-1", "alice@x.com", "")
	suite.Require().NoError(err)
	_, err = p.closer.Handle(ctx, done)
	suite.Require().NoError(err)

	startPacking, err := commands.NewStartPackingCommand(billingActor, kernel.NewUUID(), "LTPI-1", "carol@x.com", "")
	suite.Require().NoError(err)
	packing, err := p.starter.Handle(ctx, startPacking)
	suite.Require().NoError(err)

	back, err := commands.NewReturnToBillingCommand(billingActor, kernel.NewUUID(), "LTPI-1", "batch mismatch", "")
	suite.Require().NoError(err)
	result, err := p.returner.Handle(ctx, back)
	suite.Require().NoError(err)
	suite.Equal(invoice.SectionPacking, result.Section)
	suite.Require().Len(result.CancelledSessions, 1)
	suite.True(packing.SessionID.IsEqual(result.CancelledSessions[0]))

	inv := suite.storedInvoice()
	suite.Equal(invoice.StatusReview, inv.Status())
	suite.Equal(invoice.BillingStatusReview, inv.BillingStatus())

	_, err = suite.factory.Create().SessionRepository().GetActiveByWorker(ctx, mustEmail(suite.T(), "carol@x.com"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound, "carol is free again")

	again, err := commands.NewReturnToBillingCommand(billingActor, kernel.NewUUID(), "LTPI-1", "again", "")
	suite.Require().NoError(err)
	_, err = p.returner.Handle(ctx, again)
	suite.requireConflict(err, "already_returned")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestScenario_ConcurrentStartsOnOneInvoice_OneWins() {
	p := suite.newPipeline()
	suite.importLTPI1(p)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, email := range []string{"alice@x.com", "bob@x.com"} {
		wg.Add(1)
		go func(i int, email string) {
			defer wg.Done()
			results[i] = suite.startPicking(p, email)
		}(i, email)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
			continue
		}
		suite.Require().ErrorIs(err, errs.ErrStateConflict)
	}
	suite.Equal(1, succeeded)
	suite.Equal(invoice.StatusPicking, suite.storedInvoice().Status())
}
