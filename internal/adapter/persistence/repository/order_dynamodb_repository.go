package repository

import (
	"context"
	"fmt"
	"strings"

	"happydeals/internal/domain/entities"
	"happydeals/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPendingOrdersTableName = "pending_orders"
	defaultOrdersTableName        = "orders"
	defaultProductsTableName      = "products"
	defaultCartsTableName         = "carts"
)

type lineItemItem struct {
	ProductID string                `dynamodbav:"product_id"`
	VariantID string                `dynamodbav:"variant_id,omitempty"`
	Name      string                `dynamodbav:"name,omitempty"`
	Quantity  int64                 `dynamodbav:"quantity"`
	UnitPrice attributevalue.Number `dynamodbav:"unit_price"`
}

type pendingOrderItem struct {
	ID            string                `dynamodbav:"id"`
	BuyerID       string                `dynamodbav:"buyer_id"`
	SellerID      string                `dynamodbav:"seller_id"`
	CartID        string                `dynamodbav:"cart_id,omitempty"`
	Items         []lineItemItem        `dynamodbav:"items"`
	TotalPrice    attributevalue.Number `dynamodbav:"total_price"`
	Currency      string                `dynamodbav:"currency"`
	PickupAddress string                `dynamodbav:"pickup_address,omitempty"`
	CreatedAt     string                `dynamodbav:"created_at"`
}

type orderItem struct {
	ID                 string                `dynamodbav:"id"`
	BuyerID            string                `dynamodbav:"buyer_id"`
	SellerID           string                `dynamodbav:"seller_id"`
	Items              []lineItemItem        `dynamodbav:"items"`
	TotalPrice         attributevalue.Number `dynamodbav:"total_price"`
	Currency           string                `dynamodbav:"currency"`
	PickupAddress      string                `dynamodbav:"pickup_address,omitempty"`
	Status             string                `dynamodbav:"status"`
	PaymentReferenceID string                `dynamodbav:"payment_reference_id"`
	PickupCode         string                `dynamodbav:"pickup_code,omitempty"`
	CreatedAt          string                `dynamodbav:"created_at"`
	UpdatedAt          string                `dynamodbav:"updated_at"`
	CompletedAt        string                `dynamodbav:"completed_at,omitempty"`
}

type productVariantItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name,omitempty"`
	Stock int64  `dynamodbav:"stock"`
}

type productItem struct {
	ID       string               `dynamodbav:"id"`
	SellerID string               `dynamodbav:"seller_id"`
	Name     string               `dynamodbav:"name"`
	Variants []productVariantItem `dynamodbav:"variants"`
	Version  int64                `dynamodbav:"version"`
}

// OrderDynamoRepository covers pending orders, orders, products and carts.
//
// Table requirements (all PK: id string):
//   - pending_orders, orders, products, carts
type OrderDynamoRepository struct {
	ddb           *dynamodb.Client
	pendingOrders string
	orders        string
	products      string
	carts         string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:           ddb,
		pendingOrders: getenvDefault("PENDING_ORDERS_TABLE", defaultPendingOrdersTableName),
		orders:        getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		products:      getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
		carts:         getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

func (r *OrderDynamoRepository) CreatePendingOrder(ctx context.Context, po entities.PendingOrder) error {
	av, err := attributevalue.MarshalMap(toPendingOrderItem(po))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.pendingOrders),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrAlreadyExists
	}
	return err
}

func (r *OrderDynamoRepository) GetPendingOrder(ctx context.Context, id string) (entities.PendingOrder, error) {
	var it pendingOrderItem
	found, err := r.get(ctx, r.pendingOrders, id, &it)
	if err != nil || !found {
		return entities.PendingOrder{}, err
	}
	return fromPendingOrderItem(it), nil
}

func (r *OrderDynamoRepository) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	var it productItem
	found, err := r.get(ctx, r.products, id, &it)
	if err != nil || !found {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *OrderDynamoRepository) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	var it orderItem
	found, err := r.get(ctx, r.orders, id, &it)
	if err != nil || !found {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// CommitSettlement writes, in order: the order, the pending order delete,
// one stock update per product, the cart delete and the pending payment consume.
func (r *OrderDynamoRepository) CommitSettlement(ctx context.Context, s entities.OrderSettlement) error {
	items, itemErrs, err := r.settlementWrites(s)
	if err != nil {
		return err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return mapTransactionError(err, itemErrs)
	}
	return nil
}

func (r *OrderDynamoRepository) settlementWrites(s entities.OrderSettlement) ([]types.TransactWriteItem, []error, error) {
	orderAV, err := attributevalue.MarshalMap(toOrderItem(s.Order))
	if err != nil {
		return nil, nil, err
	}

	items := []types.TransactWriteItem{
		{Put: &types.Put{
			TableName:                aws.String(r.orders),
			Item:                     orderAV,
			ConditionExpression:      aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
		{Delete: &types.Delete{
			TableName:                aws.String(r.pendingOrders),
			Key:                      stringKey(s.Order.ID),
			ConditionExpression:      aws.String("attribute_exists(#id)"),
			ExpressionAttributeNames: map[string]string{"#id": "id"},
		}},
	}
	itemErrs := []error{interfaces.ErrPendingPaymentConsumed, interfaces.ErrPreconditionFailed}

	for _, up := range s.Stock {
		items = append(items, types.TransactWriteItem{Update: r.stockUpdate(up)})
		itemErrs = append(itemErrs, interfaces.ErrVersionConflict)
	}

	if s.CartID != "" {
		items = append(items, types.TransactWriteItem{Delete: &types.Delete{
			TableName: aws.String(r.carts),
			Key:       stringKey(s.CartID),
		}})
		itemErrs = append(itemErrs, nil)
	}
	if s.PendingPaymentID != "" {
		items = append(items, consumePendingPayment(s.PendingPaymentID))
		itemErrs = append(itemErrs, interfaces.ErrPendingPaymentConsumed)
	}
	return items, itemErrs, nil
}

// stockUpdate sets only the touched variant stocks and bumps the version.
// Each touched position must still hold the same variant id, so a product
// edited between read and commit fails the condition instead of being
// overwritten.
func (r *OrderDynamoRepository) stockUpdate(up entities.ProductStockUpdate) *types.Update {
	names := map[string]string{"#id": "id", "#version": "version"}
	if len(up.Variants) > 0 {
		names["#variants"] = "variants"
		names["#vid"] = "id"
		names["#stock"] = "stock"
	}
	values := map[string]types.AttributeValue{
		":one": &types.AttributeValueMemberN{Value: "1"},
	}

	cond := []string{"attribute_exists(#id)"}
	if up.ReadVersion == 0 {
		cond = append(cond, "(attribute_not_exists(#version) OR #version = :read)")
	} else {
		cond = append(cond, "#version = :read")
	}
	values[":read"] = &types.AttributeValueMemberN{Value: int64String(up.ReadVersion)}

	sets := make([]string, 0, len(up.Variants))
	for i, v := range up.Variants {
		path := fmt.Sprintf("#variants[%d]", v.Index)
		stockKey := fmt.Sprintf(":s%d", i)
		vidKey := fmt.Sprintf(":v%d", i)
		sets = append(sets, fmt.Sprintf("%s.#stock = %s", path, stockKey))
		cond = append(cond, fmt.Sprintf("%s.#vid = %s", path, vidKey))
		values[stockKey] = &types.AttributeValueMemberN{Value: int64String(v.Stock)}
		values[vidKey] = &types.AttributeValueMemberS{Value: v.VariantID}
	}

	update := "ADD #version :one"
	if len(sets) > 0 {
		update = "SET " + strings.Join(sets, ", ") + " " + update
	}

	return &types.Update{
		TableName:                 aws.String(r.products),
		Key:                       stringKey(up.ProductID),
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String(strings.Join(cond, " AND ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}
}

func (r *OrderDynamoRepository) UpdateOrder(ctx context.Context, o entities.Order, expected entities.OrderStatus) error {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.orders),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberS{Value: string(expected)},
		},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrPreconditionFailed
	}
	return err
}

func (r *OrderDynamoRepository) get(ctx context.Context, table, id string, out interface{}) (bool, error) {
	res, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            stringKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(res.Item, out)
}

func toLineItems(items []entities.LineItem) []lineItemItem {
	out := make([]lineItemItem, 0, len(items))
	for _, li := range items {
		out = append(out, lineItemItem{
			ProductID: li.ProductID,
			VariantID: li.VariantID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: toNumber(li.UnitPrice),
		})
	}
	return out
}

func fromLineItems(items []lineItemItem) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, li := range items {
		out = append(out, entities.LineItem{
			ProductID: li.ProductID,
			VariantID: li.VariantID,
			Name:      li.Name,
			Quantity:  li.Quantity,
			UnitPrice: fromNumber(li.UnitPrice),
		})
	}
	return out
}

func toPendingOrderItem(po entities.PendingOrder) pendingOrderItem {
	return pendingOrderItem{
		ID:            po.ID,
		BuyerID:       po.BuyerID,
		SellerID:      po.SellerID,
		CartID:        po.CartID,
		Items:         toLineItems(po.Items),
		TotalPrice:    toNumber(po.TotalPrice),
		Currency:      po.Currency,
		PickupAddress: po.PickupAddress,
		CreatedAt:     formatTime(po.CreatedAt),
	}
}

func fromPendingOrderItem(it pendingOrderItem) entities.PendingOrder {
	return entities.PendingOrder{
		ID:            it.ID,
		BuyerID:       it.BuyerID,
		SellerID:      it.SellerID,
		CartID:        it.CartID,
		Items:         fromLineItems(it.Items),
		TotalPrice:    fromNumber(it.TotalPrice),
		Currency:      it.Currency,
		PickupAddress: it.PickupAddress,
		CreatedAt:     parseTime(it.CreatedAt),
	}
}

func toOrderItem(o entities.Order) orderItem {
	it := orderItem{
		ID:                 o.ID,
		BuyerID:            o.BuyerID,
		SellerID:           o.SellerID,
		Items:              toLineItems(o.Items),
		TotalPrice:         toNumber(o.TotalPrice),
		Currency:           o.Currency,
		PickupAddress:      o.PickupAddress,
		Status:             string(o.Status),
		PaymentReferenceID: o.PaymentReferenceID,
		PickupCode:         o.PickupCode,
		CreatedAt:          formatTime(o.CreatedAt),
		UpdatedAt:          formatTime(o.UpdatedAt),
	}
	if o.CompletedAt != nil {
		it.CompletedAt = formatTime(*o.CompletedAt)
	}
	return it
}

func fromOrderItem(it orderItem) entities.Order {
	o := entities.Order{
		ID:                 it.ID,
		BuyerID:            it.BuyerID,
		SellerID:           it.SellerID,
		Items:              fromLineItems(it.Items),
		TotalPrice:         fromNumber(it.TotalPrice),
		Currency:           it.Currency,
		PickupAddress:      it.PickupAddress,
		Status:             entities.OrderStatus(it.Status),
		PaymentReferenceID: it.PaymentReferenceID,
		PickupCode:         it.PickupCode,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
	if it.CompletedAt != "" {
		t := parseTime(it.CompletedAt)
		o.CompletedAt = &t
	}
	return o
}

func fromProductItem(it productItem) entities.Product {
	variants := make([]entities.ProductVariant, 0, len(it.Variants))
	for _, v := range it.Variants {
		variants = append(variants, entities.ProductVariant{ID: v.ID, Name: v.Name, Stock: v.Stock})
	}
	return entities.Product{ID: it.ID, SellerID: it.SellerID, Name: it.Name, Variants: variants, Version: it.Version}
}
