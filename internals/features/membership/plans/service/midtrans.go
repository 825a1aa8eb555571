package service

import (
	"context"
	"fmt"
	"time"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/google/uuid"

	"gymku_backend/internals/features/membership/plans/model"
)

var SnapClient snap.Client

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// MidtransInvoicer membuat Snap transaction untuk plan berbayar.
type MidtransInvoicer struct{}

func (MidtransInvoicer) CreateInvoice(ctx context.Context, studentID uuid.UUID, plan *model.MembershipPlanModel) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  fmt.Sprintf("plan-%s-%d", studentID, time.Now().Unix()),
			GrossAmt: plan.MembershipPlanPrice,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    plan.MembershipPlanID.String(),
				Name:  plan.MembershipPlanName,
				Price: plan.MembershipPlanPrice,
				Qty:   1,
			},
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.RedirectURL, nil
}
