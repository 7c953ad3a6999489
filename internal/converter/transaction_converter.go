package converter

import (
	"clinic-ops-api/internal/delivery/dto"
	"clinic-ops-api/internal/domain/entity"
)

// TransactionToResponse converts a Transaction entity to TransactionResponse DTO
func TransactionToResponse(transaction *entity.Transaction) *dto.TransactionResponse {
	if transaction == nil {
		return nil
	}

	return &dto.TransactionResponse{
		ID:            transaction.ID,
		PatientName:   transaction.Patient.User.FullName,
		ServiceName:   transaction.Service.Name,
		Amount:        transaction.Amount,
		PaymentMethod: string(transaction.PaymentMethod),
		DoctorName:    transaction.Doctor.User.FullName,
	}
}

// TransactionsToResponses converts a slice of Transaction entities to TransactionResponse DTOs
func TransactionsToResponses(transactions []entity.Transaction) []dto.TransactionResponse {
	responses := make([]dto.TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = *TransactionToResponse(&transactions[i])
	}
	return responses
}

// TestResultToResponse converts a TestResult entity to TestResultResponse DTO
func TestResultToResponse(testResult *entity.TestResult) *dto.TestResultResponse {
	if testResult == nil {
		return nil
	}

	return &dto.TestResultResponse{
		ID:          testResult.ID,
		PatientName: testResult.Patient.User.FullName,
		ServiceName: testResult.Service.Name,
		Result:      testResult.Result,
		DoctorName:  testResult.Doctor.User.FullName,
	}
}

// TestResultsToResponses converts a slice of TestResult entities to TestResultResponse DTOs
func TestResultsToResponses(testResults []entity.TestResult) []dto.TestResultResponse {
	responses := make([]dto.TestResultResponse, len(testResults))
	for i := range testResults {
		responses[i] = *TestResultToResponse(&testResults[i])
	}
	return responses
}
