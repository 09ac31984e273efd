package repository

import (
	"context"
	"os"

	"crm_xpto/internal/domain/entities"
	"crm_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultClientsTableName = "clients"
	defaultSellersTableName = "sellers"
)

type clientItem struct {
	ID      string `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Email   string `dynamodbav:"email"`
	Company string `dynamodbav:"company,omitempty"`
}

type sellerItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email"`
}

// DirectoryDynamoRepository reads clients and sellers from the CRM
// directory tables.
//
// Table requirements (both tables):
//   - PK: id (string)
//
// The current seller is resolved from DEFAULT_SELLER_ID; a missing or
// unknown id yields a zero Seller, never an error.

type DirectoryDynamoRepository struct {
	ddb          *dynamodb.Client
	clientsTable string
	sellersTable string
}

var _ interfaces.IDirectoryProvider = (*DirectoryDynamoRepository)(nil)

func NewDirectoryDynamoRepository(ddb *dynamodb.Client) *DirectoryDynamoRepository {
	return &DirectoryDynamoRepository{
		ddb:          ddb,
		clientsTable: getenvDefault("CLIENTS_TABLE", defaultClientsTableName),
		sellersTable: getenvDefault("SELLERS_TABLE", defaultSellersTableName),
	}
}

func (r *DirectoryDynamoRepository) FetchClients(ctx context.Context) ([]entities.Client, error) {
	clients := []entities.Client{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.clientsTable),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var page []clientItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			clients = append(clients, entities.Client{ID: it.ID, Name: it.Name, Email: it.Email, Company: it.Company})
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return clients, nil
}

func (r *DirectoryDynamoRepository) FetchSellers(ctx context.Context) ([]entities.Seller, error) {
	sellers := []entities.Seller{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.sellersTable),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var page []sellerItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			sellers = append(sellers, entities.Seller{ID: it.ID, Name: it.Name, Email: it.Email})
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return sellers, nil
}

func (r *DirectoryDynamoRepository) FetchCurrentSeller(ctx context.Context) (entities.Seller, error) {
	sellerID := os.Getenv("DEFAULT_SELLER_ID")
	if sellerID == "" {
		return entities.Seller{}, nil
	}

	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.sellersTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: sellerID},
		},
	})
	if err != nil {
		return entities.Seller{}, err
	}
	if len(out.Item) == 0 {
		return entities.Seller{}, nil
	}

	var it sellerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Seller{}, err
	}
	return entities.Seller{ID: it.ID, Name: it.Name, Email: it.Email}, nil
}
