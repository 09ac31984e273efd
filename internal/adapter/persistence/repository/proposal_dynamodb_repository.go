package repository

import (
	"context"
	"errors"
	"time"

	"crm_xpto/internal/domain/entities"
	"crm_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProposalsTableName = "proposals"
	accessTokenIndexName      = "access_token-index"
)

type partyItem struct {
	ID      string `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Email   string `dynamodbav:"email"`
	Company string `dynamodbav:"company,omitempty"`
}

type lineItemItem struct {
	CatalogItemID   string `dynamodbav:"catalog_item_id"`
	Name            string `dynamodbav:"name"`
	UnitPrice       string `dynamodbav:"unit_price"`
	Category        string `dynamodbav:"category,omitempty"`
	Kind            string `dynamodbav:"kind"`
	Quantity        int    `dynamodbav:"quantity"`
	DiscountPercent string `dynamodbav:"discount_percent"`
	Subtotal        string `dynamodbav:"subtotal"`
}

type totalsItem struct {
	Subtotal       string `dynamodbav:"subtotal"`
	DiscountAmount string `dynamodbav:"discount_amount"`
	TaxableBase    string `dynamodbav:"taxable_base"`
	TaxAmount      string `dynamodbav:"tax_amount"`
	Total          string `dynamodbav:"total"`
}

type proposalItem struct {
	ID                    string         `dynamodbav:"id"`
	Title                 string         `dynamodbav:"title"`
	Seller                partyItem      `dynamodbav:"seller"`
	Client                partyItem      `dynamodbav:"client"`
	LineItems             []lineItemItem `dynamodbav:"line_items"`
	GlobalDiscountPercent string         `dynamodbav:"global_discount_percent"`
	TaxPercent            string         `dynamodbav:"tax_percent"`
	Totals                totalsItem     `dynamodbav:"totals"`
	PaymentMethod         string         `dynamodbav:"payment_method"`
	ValidityDays          int            `dynamodbav:"validity_days"`
	ValidUntil            string         `dynamodbav:"valid_until"`
	Notes                 string         `dynamodbav:"notes,omitempty"`
	AccessToken           string         `dynamodbav:"access_token"`
	PaymentLinkURL        string         `dynamodbav:"payment_link_url,omitempty"`
	Status                string         `dynamodbav:"status"`
	CreatedAt             string         `dynamodbav:"created_at"`
	UpdatedAt             string         `dynamodbav:"updated_at"`
}

// ProposalDynamoRepository persists submitted proposals in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI access_token-index: PK access_token (string)
//
// Monetary values are stored as decimal strings so no precision is lost in
// the round trip.

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	it := toProposalItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

// GetByToken resolves the client-portal access token through the GSI. The
// index is eventually consistent, which is acceptable for portal reads.
func (r *ProposalDynamoRepository) GetByToken(ctx context.Context, token string) (entities.Proposal, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(accessTokenIndexName),
		KeyConditionExpression: aws.String("#access_token = :access_token"),
		ExpressionAttributeNames: map[string]string{
			"#access_token": "access_token",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":access_token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Items) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

// UpdateStatusByID transitions a proposal out of the pending state. The
// update is conditional on the current status; a failed condition returns a
// zero proposal so the use case can distinguish missing from non-pending.
func (r *ProposalDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.ProposalStatusPendente)},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	items := make([]lineItemItem, len(p.LineItems))
	for i, li := range p.LineItems {
		items[i] = lineItemItem{
			CatalogItemID:   li.Item.ID,
			Name:            li.Item.Name,
			UnitPrice:       li.Item.UnitPrice.String(),
			Category:        li.Item.Category,
			Kind:            string(li.Item.Kind),
			Quantity:        li.Quantity,
			DiscountPercent: li.DiscountPercent.String(),
			Subtotal:        li.Subtotal.String(),
		}
	}
	return proposalItem{
		ID:        p.ID,
		Title:     p.Title,
		Seller:    partyItem{ID: p.Seller.ID, Name: p.Seller.Name, Email: p.Seller.Email},
		Client:    partyItem{ID: p.Client.ID, Name: p.Client.Name, Email: p.Client.Email, Company: p.Client.Company},
		LineItems: items,
		GlobalDiscountPercent: p.GlobalDiscountPercent.String(),
		TaxPercent:            p.TaxPercent.String(),
		Totals: totalsItem{
			Subtotal:       p.Totals.Subtotal.String(),
			DiscountAmount: p.Totals.DiscountAmount.String(),
			TaxableBase:    p.Totals.TaxableBase.String(),
			TaxAmount:      p.Totals.TaxAmount.String(),
			Total:          p.Totals.Total.String(),
		},
		PaymentMethod:  string(p.PaymentMethod),
		ValidityDays:   p.ValidityDays,
		ValidUntil:     p.ValidUntil.UTC().Format(time.RFC3339Nano),
		Notes:          p.Notes,
		AccessToken:    p.AccessToken,
		PaymentLinkURL: p.PaymentLinkURL,
		Status:         string(p.Status),
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	items := make([]entities.LineItem, len(it.LineItems))
	for i, li := range it.LineItems {
		items[i] = entities.LineItem{
			Item: entities.CatalogItem{
				ID:        li.CatalogItemID,
				Name:      li.Name,
				UnitPrice: decimalFromString(li.UnitPrice),
				Category:  li.Category,
				Kind:      entities.ItemKind(li.Kind),
			},
			Quantity:        li.Quantity,
			DiscountPercent: decimalFromString(li.DiscountPercent),
			Subtotal:        decimalFromString(li.Subtotal),
		}
	}
	validUntil, _ := time.Parse(time.RFC3339Nano, it.ValidUntil)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Proposal{
		ID:        it.ID,
		Title:     it.Title,
		Seller:    entities.Seller{ID: it.Seller.ID, Name: it.Seller.Name, Email: it.Seller.Email},
		Client:    entities.Client{ID: it.Client.ID, Name: it.Client.Name, Email: it.Client.Email, Company: it.Client.Company},
		LineItems: items,
		GlobalDiscountPercent: decimalFromString(it.GlobalDiscountPercent),
		TaxPercent:            decimalFromString(it.TaxPercent),
		Totals: entities.Totals{
			Subtotal:       decimalFromString(it.Totals.Subtotal),
			DiscountAmount: decimalFromString(it.Totals.DiscountAmount),
			TaxableBase:    decimalFromString(it.Totals.TaxableBase),
			TaxAmount:      decimalFromString(it.Totals.TaxAmount),
			Total:          decimalFromString(it.Totals.Total),
		},
		PaymentMethod:  entities.PaymentMethod(it.PaymentMethod),
		ValidityDays:   it.ValidityDays,
		ValidUntil:     validUntil,
		Notes:          it.Notes,
		AccessToken:    it.AccessToken,
		PaymentLinkURL: it.PaymentLinkURL,
		Status:         entities.ProposalStatus(it.Status),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
