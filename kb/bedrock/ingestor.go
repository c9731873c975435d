// Copyright 2026 Inkwell AI
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package bedrock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagent/types"

	"github.com/inkwell-ai/docingest/core"
	"github.com/inkwell-ai/docingest/kb"
)

// AgentAPI is the subset of the Bedrock Agent client the ingestor uses.
// Satisfied by *bedrockagent.Client.
type AgentAPI interface {
	IngestKnowledgeBaseDocuments(ctx context.Context, params *bedrockagent.IngestKnowledgeBaseDocumentsInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.IngestKnowledgeBaseDocumentsOutput, error)
	GetKnowledgeBaseDocuments(ctx context.Context, params *bedrockagent.GetKnowledgeBaseDocumentsInput, optFns ...func(*bedrockagent.Options)) (*bedrockagent.GetKnowledgeBaseDocumentsOutput, error)
}

// Ingestor implements kb.Ingestor using the Amazon Bedrock Agent
// knowledge-base document API. Documents are registered as CUSTOM content
// referencing their S3 location; the object body is never read here.
type Ingestor struct {
	client AgentAPI
	config kb.Config
	logger *slog.Logger
}

// NewIngestor creates an ingestor bound to one knowledge base and data
// source. The config is validated before use.
//
// Returns kb.Ingestor (not *Ingestor) to keep callers decoupled from the
// Bedrock-specific implementation.
func NewIngestor(client AgentAPI, config kb.Config) (kb.Ingestor, error) {
	if client == nil {
		return nil, errors.New("bedrock: client required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Ingestor{
		client: client,
		config: config,
		logger: slog.Default().With("component", "bedrock-ingestor"),
	}, nil
}

// IngestDocument submits one document by reference.
//
// The client token is left to the SDK's idempotency-token middleware; the
// document identifier does not satisfy the token's length constraints.
func (ing *Ingestor) IngestDocument(ctx context.Context, req core.IngestionRequest) (*kb.IngestionResult, error) {
	attributes := make([]types.MetadataAttribute, len(req.Metadata))
	for i, entry := range req.Metadata {
		attributes[i] = types.MetadataAttribute{
			Key: aws.String(entry.Key),
			Value: &types.MetadataAttributeValue{
				Type:        types.MetadataValueTypeString,
				StringValue: aws.String(entry.Value),
			},
		}
	}

	input := &bedrockagent.IngestKnowledgeBaseDocumentsInput{
		KnowledgeBaseId: aws.String(ing.config.KnowledgeBaseID),
		DataSourceId:    aws.String(ing.config.DataSourceID),
		Documents: []types.KnowledgeBaseDocument{
			{
				Metadata: &types.DocumentMetadata{
					Type:             types.MetadataSourceTypeInLineAttribute,
					InlineAttributes: attributes,
				},
				Content: &types.DocumentContent{
					DataSourceType: types.ContentDataSourceTypeCustom,
					Custom: &types.CustomContent{
						CustomDocumentIdentifier: &types.CustomDocumentIdentifier{
							Id: aws.String(req.DocumentID),
						},
						SourceType: types.CustomSourceTypeS3Location,
						S3Location: &types.CustomS3Location{
							Uri: aws.String(req.SourceURI),
						},
					},
				},
			},
		},
	}

	out, err := ing.client.IngestKnowledgeBaseDocuments(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("ingest knowledge base documents: %w", err)
	}
	if len(out.DocumentDetails) == 0 {
		return nil, kb.ErrNoResult
	}

	return resultFromDetail(req.DocumentID, out.DocumentDetails[0]), nil
}

// DocumentStatus retrieves the current indexing status for a document.
func (ing *Ingestor) DocumentStatus(ctx context.Context, documentID string) (*kb.IngestionResult, error) {
	input := &bedrockagent.GetKnowledgeBaseDocumentsInput{
		KnowledgeBaseId: aws.String(ing.config.KnowledgeBaseID),
		DataSourceId:    aws.String(ing.config.DataSourceID),
		DocumentIdentifiers: []types.DocumentIdentifier{
			{
				DataSourceType: types.ContentDataSourceTypeCustom,
				Custom: &types.CustomDocumentIdentifier{
					Id: aws.String(documentID),
				},
			},
		},
	}

	out, err := ing.client.GetKnowledgeBaseDocuments(ctx, input)
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return &kb.IngestionResult{DocumentID: documentID, Status: kb.StatusNotFound}, nil
		}
		return nil, fmt.Errorf("get knowledge base documents: %w", err)
	}
	if len(out.DocumentDetails) == 0 {
		return &kb.IngestionResult{DocumentID: documentID, Status: kb.StatusNotFound}, nil
	}

	return resultFromDetail(documentID, out.DocumentDetails[0]), nil
}

// resultFromDetail maps a service document detail onto a kb.IngestionResult.
// The identifier echoed by the service wins over the submitted one when both
// are present.
func resultFromDetail(documentID string, detail types.KnowledgeBaseDocumentDetail) *kb.IngestionResult {
	if detail.Identifier != nil && detail.Identifier.Custom != nil {
		documentID = aws.ToString(detail.Identifier.Custom.Id)
	}
	return &kb.IngestionResult{
		DocumentID:   documentID,
		Status:       kb.Status(detail.Status),
		StatusReason: aws.ToString(detail.StatusReason),
	}
}
