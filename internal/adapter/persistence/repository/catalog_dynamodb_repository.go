package repository

import (
	"context"
	"strings"

	"crm_xpto/internal/domain/entities"
	"crm_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "catalog_items"

type catalogItemItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	UnitPrice string `dynamodbav:"unit_price"`
	Category  string `dynamodbav:"category,omitempty"`
	Kind      string `dynamodbav:"kind"`
}

// CatalogDynamoRepository reads the sellable catalog from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small enough to scan; callers cache the snapshot.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogProvider = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) FetchCatalog(ctx context.Context, filter string) ([]entities.CatalogItem, error) {
	items := []entities.CatalogItem{}
	filter = strings.ToLower(strings.TrimSpace(filter))

	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var page []catalogItemItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		for _, it := range page {
			ci := entities.CatalogItem{
				ID:        it.ID,
				Name:      it.Name,
				UnitPrice: decimalFromString(it.UnitPrice),
				Category:  it.Category,
				Kind:      entities.ItemKind(it.Kind),
			}
			if filter != "" &&
				!strings.Contains(strings.ToLower(ci.Name), filter) &&
				!strings.Contains(strings.ToLower(ci.Category), filter) {
				continue
			}
			items = append(items, ci)
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return items, nil
}
